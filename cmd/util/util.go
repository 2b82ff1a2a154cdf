package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore"
	"github.com/SujalChoudhari/Node-User-Settings/lib/logging"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// defaultStorageDirectory returns the directory preference files live in
// when --dir is not given: the platform config directory, or a dot
// directory in the working directory when that cannot be determined.
func defaultStorageDirectory() string {
	if cfgDir, err := os.UserConfigDir(); err == nil && cfgDir != "" {
		return filepath.Join(cfgDir, "user-settings")
	}
	return ".user-settings"
}

// SetupStoreFlags adds the common storage flags to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "dir"
	cmd.PersistentFlags().String(key, defaultStorageDirectory(), WrapString("Directory the preference files are stored in"))

	key = "file"
	cmd.PersistentFlags().String(key, "", WrapString("Logical preference file name to target instead of the default "+fstore.DefaultFileName))

	key = "default-file"
	cmd.PersistentFlags().String(key, fstore.DefaultFileName, WrapString("Name of the default preference file"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("Log level (debug, info, warn, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("usersettings")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetStoreConfig reads the file store configuration from viper
func GetStoreConfig() fstore.Config {
	return fstore.Config{
		StorageDirectory: viper.GetString("dir"),
		DefaultFileName:  viper.GetString("default-file"),
	}
}

// GetFileName retrieves the configured logical file name ("" = default file)
func GetFileName() string {
	return viper.GetString("file")
}

// ApplyLogLevel applies the configured log level to all component loggers
func ApplyLogLevel() error {
	return logging.SetLevel(viper.GetString("log-level"))
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
