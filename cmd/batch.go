package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/GuglioIsStupid/OpenUtau/constants"
	"github.com/GuglioIsStupid/OpenUtau/store"
	"github.com/GuglioIsStupid/OpenUtau/svp"
	"github.com/GuglioIsStupid/OpenUtau/ustx"
	"github.com/GuglioIsStupid/OpenUtau/util"
)

var (
	batchOut    string
	batchBucket string
	batchWatch  bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", constants.GetOutDir(), "output directory")
	batchCmd.Flags().StringVar(&batchBucket, "bucket", "", "S3 bucket to upload output to")
	batchCmd.Flags().BoolVar(&batchWatch, "watch", false, "keep watching the directory and re-convert on change")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Converts every project under a directory to USTx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runBatch(args[0]); err != nil {
			return err
		}
		if batchWatch {
			watchLoop(args[0])
		}
		return nil
	},
}

func runBatch(dir string) error {
	if err := os.MkdirAll(batchOut, 0755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", batchOut, err)
	}

	paths := util.GatherProjectPaths(dir, 0)
	var converted, skipped, notes int
	for _, path := range paths {
		project, err := svp.Load(path, slog.Default())
		if err != nil {
			slog.Warn("skipping project", "path", path, "error", err)
			skipped++
			continue
		}
		out := filepath.Join(batchOut, replaceExt(filepath.Base(path), ".ustx"))
		if err := ustx.WriteFile(out, project); err != nil {
			return err
		}
		converted++
		for _, part := range project.Parts {
			notes += len(part.Notes)
		}
	}

	fmt.Printf("converted: %v\n", converted)
	fmt.Printf("skipped: %v\n", skipped)
	fmt.Printf("notes: %v\n", notes)

	if batchBucket != "" {
		if err := store.Upload(batchOut, batchBucket); err != nil {
			return err
		}
		slog.Info("uploaded output", "bucket", batchBucket)
	}
	return nil
}

// watchLoop polls dir for modified projects and re-runs the batch, debounced
// so a burst of file writes triggers one conversion.
func watchLoop(dir string) {
	slog.Info("watching for changes", "dir", dir)
	debounced := debounce.New(time.Second)

	seen := make(map[string]time.Time)
	for _, path := range util.GatherProjectPaths(dir, 0) {
		if info, err := os.Stat(path); err == nil {
			seen[path] = info.ModTime()
		}
	}

	for range time.Tick(2 * time.Second) {
		changed := false
		for _, path := range util.GatherProjectPaths(dir, 0) {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if t, ok := seen[path]; !ok || info.ModTime().After(t) {
				seen[path] = info.ModTime()
				changed = true
			}
		}
		if changed {
			debounced(func() {
				if err := runBatch(dir); err != nil {
					slog.Error("batch run failed", "error", err)
				}
			})
		}
	}
}
