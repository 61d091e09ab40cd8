package cmd

import (
	"context"
	"fmt"
	"time"

	"blobtidy/internal/config"
	"blobtidy/internal/notifier"
	"blobtidy/internal/report"
	"blobtidy/internal/retain"

	"github.com/spf13/cobra"
)

var reportDir string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportDir, "dir", "", "Output directory (overrides output.dir from config)")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "List the container, group blobs and write retention reports",
	Long:  "Report lists every blob of the configured container, groups root-level blobs by the name before the first dot, and for each group of three or more files writes a per-group report splitting the excess from the two most recent. Aggregate CSV/JSON exports and an excess summary are written alongside.",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if reportDir != "" {
		cfg.Output.Dir = reportDir
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	container := config.ResolveContainer(cfg.Container)
	notif := notifierFromConfig(cfg)
	start := time.Now()

	records, err := client.List(ctx, container)
	if err != nil {
		if notif != nil {
			_ = notif.NotifyError(ctx, container, err)
		}
		return fmt.Errorf("list container %q: %w", container, err)
	}

	ix, skipped, total := retain.Group(records)
	groups := report.Build(ix.Ordered(), cfg.Retention.Order == config.OrderModified)

	w := &report.Writer{Dir: cfg.Output.Dir, Log: log}
	res, err := w.Write(groups)
	if err != nil {
		if notif != nil {
			_ = notif.NotifyError(ctx, container, err)
		}
		return err
	}

	if cfg.Output.Checksums {
		if err := w.WriteChecksums(); err != nil {
			log.Error("write checksums", "error", err)
			res.WriteFails++
		}
	}
	if cfg.Output.Archive != "" {
		path, err := w.Archive(report.ArchiveFormat(cfg.Output.Archive))
		if err != nil {
			log.Error("archive reports", "error", err)
			res.WriteFails++
		} else {
			cmd.Printf("Archived reports to %s\n", path)
		}
	}

	cmd.Printf("Scanned %d blobs in %q: %d nested skipped, %d groups, %d reported, %d excess\n",
		total, container, skipped, ix.Len(), res.Groups, res.Excess)
	if res.WriteFails > 0 {
		cmd.PrintErrf("Warning: %d artifacts failed to write\n", res.WriteFails)
	}

	if notif != nil {
		if err := notif.NotifyRun(ctx, container, res.Groups, res.Excess, res.WriteFails, time.Since(start)); err != nil {
			cmd.PrintErrln("Warning: notification failed:", err)
		}
	}
	return nil
}

func notifierFromConfig(cfg *config.Config) notifier.Notifier {
	if cfg.Notifications == nil || cfg.Notifications.Discord == nil {
		return nil
	}
	n, err := notifier.NewDiscordNotifier(cfg.Notifications.Discord)
	if err != nil {
		return nil
	}
	return n
}
