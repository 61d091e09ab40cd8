package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"blobtidy/internal/config"
	"blobtidy/internal/remove"

	"github.com/spf13/cobra"
)

var removeFromFile string

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().StringVar(&removeFromFile, "from-file", "", "Read blob names from a file, one per line")
}

var removeCmd = &cobra.Command{
	Use:   "remove [name]...",
	Short: "Delete the named blobs from the container, best effort",
	Long:  "Remove deletes each named blob from the configured container. Every name is attempted: a failed deletion is logged and the loop continues. Names come from the arguments, from --from-file, or both.",
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	names := append([]string(nil), args...)
	if removeFromFile != "" {
		fromFile, err := readNames(removeFromFile)
		if err != nil {
			return err
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return fmt.Errorf("no blob names given: pass them as arguments or via --from-file")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	container := config.ResolveContainer(cfg.Container)

	failed := remove.Run(context.Background(), client, container, names, newLogger())
	cmd.Printf("Deleted %d of %d blobs from %q\n", len(names)-failed, len(names), container)
	// Best effort: per-item failures are diagnostics, not a failed run.
	return nil
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read names from %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read names from %s: %w", path, err)
	}
	return names, nil
}
