package config

import (
	"errors"
	"testing"
)

func validAzure() *Config {
	c := &Config{
		Backend:   BackendAzure,
		Container: "web",
		Azure:     &AzureConfig{ConnectionString: "DefaultEndpointsProtocol=https;AccountName=x;AccountKey=y"},
	}
	applyDefaults(c)
	return c
}

func TestValidate(t *testing.T) {
	t.Run("valid azure config", func(t *testing.T) {
		if err := Validate(validAzure()); err != nil {
			t.Errorf("Validate = %v, want nil", err)
		}
	})

	t.Run("nil config", func(t *testing.T) {
		if err := Validate(nil); err == nil {
			t.Error("expected error for nil config")
		}
	})

	t.Run("missing container", func(t *testing.T) {
		c := validAzure()
		c.Container = ""
		if err := Validate(c); !errors.Is(err, ErrMissingContainer) {
			t.Errorf("Validate = %v, want ErrMissingContainer", err)
		}
	})

	t.Run("missing azure credential", func(t *testing.T) {
		c := validAzure()
		c.Azure.ConnectionString = ""
		if err := Validate(c); !errors.Is(err, ErrMissingCredential) {
			t.Errorf("Validate = %v, want ErrMissingCredential", err)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		c := validAzure()
		c.Backend = "gcs"
		if err := Validate(c); !errors.Is(err, ErrInvalidBackend) {
			t.Errorf("Validate = %v, want ErrInvalidBackend", err)
		}
	})

	t.Run("s3 needs keys and endpoint", func(t *testing.T) {
		c := &Config{Backend: BackendS3, Container: "backups", S3: &S3Config{
			AccessKey: "ak", SecretKey: "sk",
		}}
		applyDefaults(c)
		if err := Validate(c); !errors.Is(err, ErrMissingCredential) {
			t.Errorf("Validate = %v, want ErrMissingCredential (endpoint)", err)
		}
		c.S3.Endpoint = "https://minio.local:9000"
		if err := Validate(c); err != nil {
			t.Errorf("Validate = %v, want nil", err)
		}
	})

	t.Run("retention order", func(t *testing.T) {
		c := validAzure()
		c.Retention.Order = "newest"
		if err := Validate(c); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("Validate = %v, want ErrInvalidOrder", err)
		}
	})

	t.Run("archive format", func(t *testing.T) {
		c := validAzure()
		c.Output.Archive = "rar"
		if err := Validate(c); !errors.Is(err, ErrInvalidArchive) {
			t.Errorf("Validate = %v, want ErrInvalidArchive", err)
		}
		c.Output.Archive = "zst"
		if err := Validate(c); err != nil {
			t.Errorf("Validate = %v, want nil", err)
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	c := &Config{}
	applyDefaults(c)
	if c.Backend != BackendAzure {
		t.Errorf("Backend = %q, want azure", c.Backend)
	}
	if c.Output.Dir != "reports" {
		t.Errorf("Output.Dir = %q, want reports", c.Output.Dir)
	}
	if c.Retention.Order != OrderListing {
		t.Errorf("Retention.Order = %q, want listing", c.Retention.Order)
	}
}
