package state

import (
	"github.com/spf13/cobra"

	"github.com/SujalChoudhari/Node-User-Settings/cmd/util"
	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore"
	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore/jsonfs"
	"github.com/SujalChoudhari/Node-User-Settings/lib/settings"
	"github.com/SujalChoudhari/Node-User-Settings/lib/settings/fsettings"
)

var (
	prefs settings.ISettings

	// StateCommands represents the preference state command group
	StateCommands = &cobra.Command{
		Use:               "state",
		Short:             "Read and write persisted preference values",
		PersistentPreRunE: setupSettings,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add common storage flags to the state command
	util.SetupStoreFlags(StateCommands)

	// Add subcommands
	StateCommands.AddCommand(getCmd)
	StateCommands.AddCommand(getmCmd)
	StateCommands.AddCommand(setCmd)
	StateCommands.AddCommand(setmCmd)
	StateCommands.AddCommand(hasCmd)
	StateCommands.AddCommand(delCmd)
	StateCommands.AddCommand(pathCmd)
	StateCommands.AddCommand(infoCmd)
	StateCommands.AddCommand(perfCmd)
}

// setupSettings builds the settings instance from the configured store
func setupSettings(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	if err := util.ApplyLogLevel(); err != nil {
		return err
	}

	// Create the file-backed settings instance
	var err error
	prefs, err = fsettings.NewFileSettings(func() (fstore.IFileStore, error) {
		return jsonfs.NewFileStore(util.GetStoreConfig())
	})

	return err
}
