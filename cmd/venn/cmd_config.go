package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vennsets/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default settings (default ./" + config.ConfigFileName + ")",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings after config file and environment",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ConfigFileName
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	def := config.DefaultConfig()
	if err := def.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n%s\n", path, def.Summary())
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), cfg.Summary())
	return nil
}
