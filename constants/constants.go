package constants

import "os"

// SvpTickRate is the number of Synthesizer V ticks per destination tick.
const SvpTickRate = 1470000

// Resolution is the number of destination ticks per quarter note.
const Resolution = 480

const DefaultBPM = 120.0

const DefaultBeatPerBar = 4
const DefaultBeatUnit = 4

func GetOutDir() string {
	path := os.Getenv("OPENUTAU_OUT")
	if path != "" {
		return path
	}
	return "./out"
}

func GetAWSRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// GetS3Endpoint returns an endpoint override, empty for the real service.
func GetS3Endpoint() string {
	return os.Getenv("OPENUTAU_S3_ENDPOINT")
}
