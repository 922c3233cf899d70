package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dverney/espalier"
	"github.com/dverney/espalier/internal/presentation"
)

var printCmd = &cobra.Command{
	Use:   "print [path]",
	Short: "Render a directory or outline file as a tree",
	Long:  `Reconciles the source into a tree model and writes a box-drawing rendering to stdout.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		hidden, _ := cmd.Flags().GetBool("hidden")

		delegate, label, err := openSource(path, hidden)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		controller := espalier.NewTreeController(delegate)
		renderer := &presentation.Renderer{
			Label:   label,
			Profile: termenv.ColorProfile(),
		}
		fmt.Print(renderer.Render(controller.RootNode()))
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
