package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", the value must be set before the owning feature can serve requests
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// HideInternalErrors replaces unexpected failure details in responses with a generic message.
	HideInternalErrors bool `mapstructure:"HIDE_INTERNAL_ERRORS" default:"false"`

	// OrderAPI holds the upstream order API configuration.
	OrderAPI OrderAPIConfig `mapstructure:",squash"`

	// Cache holds the optional lookup cache configuration.
	Cache CacheConfig `mapstructure:",squash"`
}

// OrderAPIConfig holds the connection details of the upstream order API.
type OrderAPIConfig struct {
	// URL is the base URL of the order API; the order ID is appended as a path segment.
	URL string `mapstructure:"ORDER_API_URL" required:"true"`
	// APIKey is sent as a bearer credential.
	APIKey string `mapstructure:"ORDER_API_KEY" required:"true"`
	// Timeout bounds a single upstream call. Zero means no client timeout.
	Timeout time.Duration `mapstructure:"ORDER_API_TIMEOUT" default:"10s"`
}

// Missing returns the keys of required order API settings that are not set.
func (c OrderAPIConfig) Missing() []string {
	return missingRequired(&c)
}

// CacheConfig holds the Redis lookup cache settings.
type CacheConfig struct {
	// RedisURL enables the cache when set (redis://[:password@]host[:port][/database]).
	RedisURL string `mapstructure:"REDIS_URL"`
	// TTL is how long a fetched order stays cached.
	TTL time.Duration `mapstructure:"ORDER_CACHE_TTL" default:"30s"`
}

// Enabled reports whether a Redis URL was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// Load loads configuration from .env files and environment variables.
// Missing order API settings do not fail the load; callers check OrderAPI.Missing.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if config.OrderAPI.Timeout < 0 {
		return nil, fmt.Errorf("invalid ORDER_API_TIMEOUT: %s", config.OrderAPI.Timeout)
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// missingRequired collects the keys of fields marked as required that hold zero values.
func missingRequired(config interface{}) []string {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	var missing []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			missing = append(missing, missingRequired(val.Field(i).Addr().Interface())...)
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			missing = append(missing, field.Tag.Get("mapstructure"))
		}
	}
	return missing
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
