// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/assetregistry/database/factory"
	"github.com/ava-labs/assetregistry/precompile/dispatch"
	"github.com/ava-labs/assetregistry/utils/logging"

	// Register the precompile config keys the upgrade file may use.
	_ "github.com/ava-labs/assetregistry/precompile/registry"
)

// EnvPrefix prefixes the environment variables read by [BuildViper]. For
// example ASSETREGISTRY_DB_TYPE sets --db-type.
const EnvPrefix = "assetregistry"

const dataDirVar = "ASSETREGISTRY_DATA_DIR"

type Config struct {
	Database       factory.DatabaseConfig `json:"database"`
	Logging        logging.Config         `json:"logging"`
	UpgradeFile    string                 `json:"upgradeFile"`
	MetricsEnabled bool                   `json:"metricsEnabled"`
}

// BuildViper returns the viper environment of the parsed [fs], the
// environment and the config file, if one is specified.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(getExpandedArg(v, ConfigFileKey))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// getExpandedArg gets the string in viper corresponding to [key] and expands
// any variables using the OS env. If the [dataDirVar] var is used, it is
// expanded to the value of [DataDirKey].
func getExpandedArg(v *viper.Viper, key string) string {
	return os.Expand(
		v.GetString(key),
		func(strVar string) string {
			if strVar == dataDirVar {
				return os.ExpandEnv(v.GetString(DataDirKey))
			}
			return os.Getenv(strVar)
		},
	)
}

func getDatabaseConfig(v *viper.Viper) (factory.DatabaseConfig, error) {
	var (
		configBytes []byte
		err         error
	)
	if v.IsSet(DBConfigFileKey) {
		path := getExpandedArg(v, DBConfigFileKey)
		configBytes, err = os.ReadFile(path)
		if err != nil {
			return factory.DatabaseConfig{}, fmt.Errorf("couldn't read database config file %s: %w", path, err)
		}
	}

	return factory.DatabaseConfig{
		Name:     v.GetString(DBTypeKey),
		ReadOnly: v.GetBool(DBReadOnlyKey),
		Path: filepath.Join(
			getExpandedArg(v, DBPathKey),
			v.GetString(DBTypeKey),
		),
		Config: configBytes,
	}, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = getExpandedArg(v, LogsDirKey)
	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.DisableWriterDisplaying = v.GetBool(LogDisableDisplayKey)
	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressEnabledKey)
	return loggingConfig, nil
}

// GetConfig returns the config described by [v].
func GetConfig(v *viper.Viper) (Config, error) {
	dbConfig, err := getDatabaseConfig(v)
	if err != nil {
		return Config{}, err
	}
	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Database:       dbConfig,
		Logging:        loggingConfig,
		UpgradeFile:    getExpandedArg(v, UpgradeFileKey),
		MetricsEnabled: v.GetBool(MetricsEnabledKey),
	}, nil
}

// ReadUpgradeConfig parses the upgrade file of [c]. Without an upgrade file
// no precompile is ever activated.
func (c Config) ReadUpgradeConfig() (*dispatch.UpgradeConfig, error) {
	if c.UpgradeFile == "" {
		return &dispatch.UpgradeConfig{}, nil
	}
	b, err := os.ReadFile(c.UpgradeFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't read upgrade file %s: %w", c.UpgradeFile, err)
	}
	return dispatch.ParseUpgradeConfig(b)
}
