package cmd

import (
	"fmt"

	"github.com/GuglioIsStupid/OpenUtau/svp"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <project.svp>",
	Short: "Lists the payloads embedded in a project container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := svp.Inspect(args[0])
		if err != nil {
			return err
		}
		for _, info := range infos {
			status := "ok"
			if !info.Decodes {
				status = "undecodable"
			}
			fmt.Printf("payload %d: %d bytes, %d runes, version %d, %s\n",
				info.Index, info.Bytes, info.Runes, info.Version, status)
		}
		return nil
	},
}
