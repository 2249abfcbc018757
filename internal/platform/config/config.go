package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	id "quorumid/pkg/domain"
)

// EnvPrefix is prepended to every environment override, e.g. QUORUMID_AUTHORITY.
const EnvPrefix = "QUORUMID"

// DefaultAuthority is the deployer address used when none is configured.
const DefaultAuthority = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"

// Config holds engine-level settings. Protocol constants such as the recovery
// quorum are not configurable.
type Config struct {
	Authority        id.Address
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
}

// Load reads configuration from the environment and, when configFile is not
// empty, from a YAML file. Environment values win over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	return FromViper(v, configFile)
}

// FromViper loads configuration through a caller-supplied viper instance so
// tests can set values directly.
func FromViper(v *viper.Viper, configFile string) (*Config, error) {
	v.SetDefault("authority", DefaultAuthority)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("metrics_namespace", "quorumid")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	authority, err := id.ParseAddress(v.GetString("authority"))
	if err != nil {
		return nil, fmt.Errorf("invalid authority: %w", err)
	}
	format := strings.ToLower(v.GetString("log_format"))
	if format != "json" && format != "text" {
		return nil, errors.New("log_format must be json or text")
	}

	return &Config{
		Authority:        authority,
		LogLevel:         strings.ToLower(v.GetString("log_level")),
		LogFormat:        format,
		MetricsNamespace: v.GetString("metrics_namespace"),
	}, nil
}
