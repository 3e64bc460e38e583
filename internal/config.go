package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/laguz/internal/maintenance"
)

// Config represents the application configuration. Values in the YAML file
// may reference environment variables; validation runs once at process start
// and malformed configuration fails the process before it serves anything.
type Config struct {
	App         ApplicationConfig `yaml:"app"`
	Mongo       MongoConfig       `yaml:"mongo"`
	Site        SiteConfig        `yaml:"site"`
	Revalidate  RevalidateConfig  `yaml:"revalidate"`
	Cache       CacheConfig       `yaml:"cache"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Mongo.Validate(); err != nil {
		return err
	}
	if err := c.Site.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return c.Maintenance.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// Validate validates the document store configuration.
func (c *MongoConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URI, validation.Required),
		validation.Field(&c.Database, validation.Required),
	)
}

// SiteConfig holds the public-facing site settings.
type SiteConfig struct {
	// BaseURL is the public URL rendering code uses when calling the read
	// endpoints server-side.
	BaseURL string `yaml:"base_url"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
	)
}

// RevalidateConfig holds the shared secret for the revalidation endpoint.
// An empty secret disables the endpoint.
type RevalidateConfig struct {
	Secret string `yaml:"secret"`
}

// CacheConfig holds the fallback freshness window. Zero keeps entries valid
// until explicitly invalidated, which is the primary model; the TTL exists
// only for mutation paths that have not wired in revalidation calls.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// TTL returns the fallback window as a duration.
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Validate validates the cache configuration.
func (c *CacheConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TTLSeconds, validation.Min(0)),
	)
}

// MaintenanceConfig holds the maintenance flag and message.
//
// Mode is one of "off" (default), "soft" (banner only, content still
// served), "hard" (all non-API responses replaced with the maintenance
// view). File, when set, is a control file whose content overrides Mode at
// runtime without a restart.
type MaintenanceConfig struct {
	Mode    string `yaml:"mode"`
	Message string `yaml:"message"`
	File    string `yaml:"file"`
}

// Validate validates the maintenance configuration and normalises an empty
// mode to "off".
func (c *MaintenanceConfig) Validate() error {
	mode, err := maintenance.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	c.Mode = string(mode)
	return nil
}

// ParsedMode returns the validated maintenance mode.
func (c *MaintenanceConfig) ParsedMode() maintenance.Mode {
	mode, err := maintenance.ParseMode(c.Mode)
	if err != nil {
		return maintenance.Off
	}
	return mode
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "site",
		},
		Site: SiteConfig{
			BaseURL: "http://localhost:8080",
		},
		Cache: CacheConfig{
			TTLSeconds: 0,
		},
		Maintenance: MaintenanceConfig{
			Mode: string(maintenance.Off),
		},
	}
}
