package state

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SujalChoudhari/Node-User-Settings/cmd/util"
)

var (
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key, falling back to --default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			fallback, _ := cmd.Flags().GetString("default")
			value, err := prefs.Get(key, fallback, util.GetFileName())
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
	getmCmd = &cobra.Command{
		Use:   "getm [key]...",
		Short: "Reads the values for multiple keys with one file round trip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := prefs.GetMany(args, util.GetFileName())
			if err != nil {
				return err
			}
			for i, value := range values {
				if value == nil {
					fmt.Printf("%s=<unset>\n", args[i])
				} else {
					fmt.Printf("%s=%s\n", args[i], *value)
				}
			}
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]
			if ok, err := prefs.Set(key, value, util.GetFileName()); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("failed to persist %s", key)
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	setmCmd = &cobra.Command{
		Use:   "setm [key=value]...",
		Short: "Sets multiple keys with a single persist for the whole batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]interface{}, len(args))
			for _, arg := range args {
				key, value, found := strings.Cut(arg, "=")
				if !found {
					return fmt.Errorf("argument %q is not of the form key=value", arg)
				}
				values[key] = value
			}
			stored, err := prefs.SetMany(values, util.GetFileName())
			if err != nil {
				return err
			}
			fmt.Printf("stored %d values: %s\n", len(stored), strings.Join(stored, ", "))
			return nil
		},
	}
	hasCmd = &cobra.Command{
		Use:   "has [key]",
		Short: "Checks if a key exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if found, err := prefs.Has(key, util.GetFileName()); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, found=%t\n", key, found)
			}
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key value pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if ok, err := prefs.Delete(key, util.GetFileName()); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("failed to persist deletion of %s", key)
			}
			fmt.Println("delete successfully")
			return nil
		},
	}
	pathCmd = &cobra.Command{
		Use:   "path",
		Short: "Prints the path of the default preference file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(prefs.DefaultFilePath())
			return nil
		},
	}
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Prints the effective store configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := util.GetStoreConfig()
			fmt.Println(cfg.String())
			return nil
		},
	}
)

func init() {
	getCmd.Flags().String("default", "", util.WrapString("Value returned when the key is not present (never written back)"))
}
