// Package store uploads conversion output to S3.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/GuglioIsStupid/OpenUtau/constants"
)

func newClient() (*s3.S3, error) {
	config := &aws.Config{
		Region: aws.String(constants.GetAWSRegion()),
	}
	if endpoint := constants.GetS3Endpoint(); endpoint != "" {
		config.Endpoint = &endpoint
		config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("store: creating AWS session: %w", err)
	}
	return s3.New(sess), nil
}

// Upload puts every regular file under dir into bucket, keyed by base name.
func Upload(dir, bucket string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("store: reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("store: opening %s: %w", path, err)
		}
		_, err = client.PutObject(&s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(entry.Name()),
			Body:   f,
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("store: uploading %s to %s: %w", entry.Name(), bucket, err)
		}
	}
	return nil
}
