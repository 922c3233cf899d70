package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier shapes hierarchical data into navigable trees",
	Long:  `Espalier reconciles a directory or an outline document into a tree model and renders or serves it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("hidden", false, "Include dotfiles when reading a directory")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
