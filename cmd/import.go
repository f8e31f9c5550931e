package cmd

import (
	"fmt"
	"log/slog"

	"github.com/GuglioIsStupid/OpenUtau/model"
	"github.com/GuglioIsStupid/OpenUtau/svp"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <project.svp>",
	Short: "Imports a project and prints a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := svp.Load(args[0], slog.Default())
		if err != nil {
			return err
		}
		printSummary(project)
		return nil
	},
}

func printSummary(p *model.Project) {
	s := model.Summarize(p)
	fmt.Printf("name: %v\n", s.Name)
	fmt.Printf("tracks: %v\n", s.Tracks)
	fmt.Printf("parts: %v\n", s.Parts)
	fmt.Printf("notes: %v\n", s.Notes)
	fmt.Printf("tempos: %v\n", s.Tempos)
	fmt.Printf("time signatures: %v\n", s.TimeSignatures)
	fmt.Printf("expressions: %v\n", s.Expressions)
}
