package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBackend    = errors.New("invalid backend: must be exactly 'azure' or 's3'")
	ErrMissingContainer  = errors.New("container name is required")
	ErrMissingCredential = errors.New("storage credentials are required")
	ErrInvalidOrder      = errors.New("invalid retention order: must be 'listing' or 'modified'")
	ErrInvalidArchive    = errors.New("invalid output archive format: must be '', 'gz' or 'zst'")
)

// Validate fails fast on anything that would make a run abort mid-flight:
// it runs before the first storage call and before any output side effect.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Container == "" {
		return ErrMissingContainer
	}
	switch cfg.Backend {
	case BackendAzure:
		if cfg.Azure == nil || cfg.Azure.ConnectionString == "" {
			return fmt.Errorf("%w: azure.connection_string is empty", ErrMissingCredential)
		}
	case BackendS3:
		if cfg.S3 == nil || cfg.S3.AccessKey == "" || cfg.S3.SecretKey == "" {
			return fmt.Errorf("%w: s3.access_key and s3.secret_key are required", ErrMissingCredential)
		}
		if cfg.S3.Endpoint == "" {
			return fmt.Errorf("%w: s3.endpoint is required", ErrMissingCredential)
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidBackend, cfg.Backend)
	}
	switch cfg.Retention.Order {
	case OrderListing, OrderModified:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOrder, cfg.Retention.Order)
	}
	switch cfg.Output.Archive {
	case "", "gz", "zst":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidArchive, cfg.Output.Archive)
	}
	return nil
}
