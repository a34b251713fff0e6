package cmd

import (
	"context"
	"fmt"

	"github.com/paulmaxus/ddproc/core/config"
	"github.com/paulmaxus/ddproc/core/logger"
	"github.com/paulmaxus/ddproc/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCmd downloads all donation blobs into the local archive.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download all donation blobs into the local data archive",
	Long: `Fetch lists every object in the configured storage bucket and writes
them into data.zip inside the data directory. The extraction pipeline only
reads this local archive; run fetch first (or provide the archive yourself).`,
	RunE: runFetch,
}

func init() {
	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	archivePath := cfg.Donation.ArchivePath()
	l.Info("fetching donation archive",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("archive", archivePath))

	if err := storage.FetchArchive(ctx, client, cfg.Storage.Bucket, archivePath, l); err != nil {
		return err
	}

	l.Info("archive ready", zap.String("archive", archivePath))
	return nil
}
