package cmd

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/GuglioIsStupid/OpenUtau/svp"
	"github.com/GuglioIsStupid/OpenUtau/ustx"
	"github.com/spf13/cobra"
)

var convertOut string

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: input with .ustx extension)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <project.svp>",
	Short: "Converts a project to USTx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := svp.Load(args[0], slog.Default())
		if err != nil {
			return err
		}
		out := convertOut
		if out == "" {
			out = replaceExt(args[0], ".ustx")
		}
		if err := ustx.WriteFile(out, project); err != nil {
			return err
		}
		slog.Info("converted project", "in", args[0], "out", out)
		return nil
	},
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
