package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SujalChoudhari/Node-User-Settings/cmd/state"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "user-settings",
		Short: "persistent JSON-file preference store",
		Long: fmt.Sprintf(`user-settings (v%s)

A persistent key-value preference store backed by JSON files on disk,
with lazy file provisioning and default-value fallback.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of user-settings",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("user-settings v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(state.StateCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
