package cmd

import (
	"fmt"
	"os"

	"blobtidy/internal/config"

	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ResolveConfigPath()
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	if err := config.Write(config.Default(), path); err != nil {
		return err
	}
	cmd.Printf("Wrote default config to %s\n", path)
	cmd.Println("Fill in the storage credentials before running 'blobtidy report'.")
	return nil
}
