package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "croupier",
	Short: "Tool for building, shuffling, and dealing playing-card decks",
	Long: `Croupier is a command-line tool for building, shuffling, and dealing
playing-card decks, and for keeping a small library of saved decks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
