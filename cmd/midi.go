package cmd

import (
	"log/slog"

	"github.com/GuglioIsStupid/OpenUtau/midifile"
	"github.com/GuglioIsStupid/OpenUtau/svp"
	"github.com/spf13/cobra"
)

var midiOut string

func init() {
	midiCmd.Flags().StringVarP(&midiOut, "out", "o", "", "output path (default: input with .mid extension)")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <project.svp>",
	Short: "Renders a project to a Standard MIDI File",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := svp.Load(args[0], slog.Default())
		if err != nil {
			return err
		}
		out := midiOut
		if out == "" {
			out = replaceExt(args[0], ".mid")
		}
		if err := midifile.WriteFile(out, project); err != nil {
			return err
		}
		slog.Info("rendered project", "in", args[0], "out", out)
		return nil
	},
}
