// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"

	DataDirKey      = "data-dir"
	DBTypeKey       = "db-type"
	DBPathKey       = "db-dir"
	DBReadOnlyKey   = "db-read-only"
	DBConfigFileKey = "db-config-file"

	LogsDirKey                   = "log-dir"
	LogLevelKey                  = "log-level"
	LogDisplayLevelKey           = "log-display-level"
	LogFormatKey                 = "log-format"
	LogRotaterMaxSizeKey         = "log-rotater-max-size"
	LogRotaterMaxFilesKey        = "log-rotater-max-files"
	LogRotaterMaxAgeKey          = "log-rotater-max-age"
	LogRotaterCompressEnabledKey = "log-rotater-compress-enabled"
	LogDisableDisplayKey         = "log-disable-display"

	UpgradeFileKey    = "upgrade-file"
	MetricsEnabledKey = "metrics-enabled"
)
