// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ava-labs/assetregistry/database/badgerdb"
	"github.com/ava-labs/assetregistry/database/leveldb"
	"github.com/ava-labs/assetregistry/database/memdb"
	"github.com/ava-labs/assetregistry/database/pebble"
)

const AppName = "assetregistry"

var (
	defaultDataDir = filepath.Join("$HOME", "."+AppName)
	defaultDBDir   = filepath.Join("$"+dataDirVar, "db")
	defaultLogDir  = filepath.Join("$"+dataDirVar, "logs")
)

// BuildFlagSet returns the flags shared by every command.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	// Config file
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Environment variables are read with the %s_ prefix", EnvPrefix))
	fs.String(DataDirKey, defaultDataDir, "Sets the base data directory where default sub-directories will be placed unless otherwise specified.")

	// Database
	fs.String(DBTypeKey, leveldb.Name, fmt.Sprintf("Database type to use. Must be one of {%s, %s, %s, %s}", leveldb.Name, pebble.Name, badgerdb.Name, memdb.Name))
	fs.String(DBPathKey, defaultDBDir, "Path to database directory")
	fs.Bool(DBReadOnlyKey, false, "If true, database writes are kept in memory and discarded on exit")
	fs.String(DBConfigFileKey, "", "Path to the backend specific database config file")

	// Logging
	fs.String(LogsDirKey, defaultLogDir, "Logging directory")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Should be one of {auto, plain, json}")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated.")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files.")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files.")
	fs.Bool(LogRotaterCompressEnabledKey, false, "Enables the compression of rotated log files through gzip.")
	fs.Bool(LogDisableDisplayKey, false, "Disables displaying logs on stdout.")

	// Precompiles
	fs.String(UpgradeFileKey, "", "Path to the precompile upgrade file. If empty, no precompile is activated")
	fs.Bool(MetricsEnabledKey, false, "If true, precompile and database metrics are collected and printed on exit")
}
