package config

import "github.com/spf13/viper"

const (
	BackendAzure = "azure"
	BackendS3    = "s3"
)

const (
	OrderListing  = "listing"
	OrderModified = "modified"
)

type Config struct {
	Backend       string               `mapstructure:"backend" yaml:"backend"`
	Container     string               `mapstructure:"container" yaml:"container"`
	Azure         *AzureConfig         `mapstructure:"azure" yaml:"azure,omitempty"`
	S3            *S3Config            `mapstructure:"s3" yaml:"s3,omitempty"`
	Output        OutputConfig         `mapstructure:"output" yaml:"output"`
	Retention     RetentionConfig      `mapstructure:"retention" yaml:"retention"`
	Notifications *NotificationsConfig `mapstructure:"notifications" yaml:"notifications,omitempty"`
}

type AzureConfig struct {
	ConnectionString string `mapstructure:"connection_string" yaml:"connection_string"`
}

type S3Config struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	Region    string `mapstructure:"region" yaml:"region"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
}

type OutputConfig struct {
	// Dir is the report directory, created on demand and overwritten on
	// every run.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// Archive packs the report directory into a tarball after a run:
	// "" (off), "gz" or "zst".
	Archive string `mapstructure:"archive" yaml:"archive,omitempty"`
	// Checksums adds a checksums.txt with a BLAKE3 digest per artifact.
	Checksums bool `mapstructure:"checksums" yaml:"checksums,omitempty"`
}

type RetentionConfig struct {
	// Order decides which two records of a group count as most recent:
	// "listing" trusts the listing order to be chronological per group,
	// "modified" sorts by modification time before splitting.
	Order string `mapstructure:"order" yaml:"order"`
}

type NotificationsConfig struct {
	Discord *DiscordConfig `mapstructure:"discord" yaml:"discord,omitempty"`
}

type DiscordConfig struct {
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	WebhookURL     string `mapstructure:"webhook_url" yaml:"webhook_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds,omitempty"`
}

func Unmarshal(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Backend == "" {
		c.Backend = BackendAzure
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "reports"
	}
	if c.Retention.Order == "" {
		c.Retention.Order = OrderListing
	}
}
