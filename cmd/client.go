package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"blobtidy/internal/config"
	"blobtidy/internal/storage"
	"blobtidy/internal/storage/azure"
	s3store "blobtidy/internal/storage/s3"
)

// blobClient is the full capability set a command may need; both backends
// implement it.
type blobClient interface {
	storage.Lister
	storage.Deleter
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func loadConfig() (*config.Config, error) {
	// The config file carries storage credentials, so refuse a readable one.
	v, err := config.Load(true)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *config.Config) (blobClient, error) {
	switch cfg.Backend {
	case config.BackendAzure:
		return azure.New(cfg.Azure.ConnectionString)
	case config.BackendS3:
		return s3store.New(s3store.Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	default:
		return nil, fmt.Errorf("%w: got %q", config.ErrInvalidBackend, cfg.Backend)
	}
}
