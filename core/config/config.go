package config

import (
	"fmt"
	"reflect"
	"strings"

	"site-server/core/logger"
	"site-server/core/server"
	"site-server/core/storage"
	"site-server/feature/static"
	"site-server/feature/subscribe"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Static holds configuration for the static file responder.
	Static static.Config `mapstructure:"static"`
	// Storage holds configuration for the object storage used by the bucket source.
	Storage storage.Config `mapstructure:"storage"`
	// Newsletter holds configuration for the subscription provider.
	Newsletter subscribe.Config `mapstructure:"newsletter"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production).
	// Load never overrides variables already set in the process environment.
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindValues(v, Config{}, ""); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that have a closed set of options.
func (c *Config) Validate() error {
	if !c.Static.IsValidSource() {
		return fmt.Errorf("invalid static.source %q (want %s or %s)", c.Static.Source, static.SourceLocal, static.SourceBucket)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. An 'env' tag names extra environment
// variables for the key, checked after the canonical one (e.g. PORT after SERVER_PORT).
func bindValues(v *viper.Viper, iface any, prefix string) error {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		if aliases := field.Tag.Get("env"); aliases != "" {
			names := []string{strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
			names = append(names, strings.Split(aliases, ",")...)
			if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
				return fmt.Errorf("failed to bind env for %s: %w", key, err)
			}
		}
	}
	return nil
}
