// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Format selects how log lines are encoded.
type Format int

const (
	Plain Format = iota
	JSON
)

var errUnknownFormat = errors.New("unknown log format")

func ToFormat(f string) (Format, error) {
	switch strings.ToLower(f) {
	case "plain", "auto", "":
		return Plain, nil
	case "json":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "plain"
}

func (f Format) encoderConfig() zapcore.EncoderConfig {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if f == JSON {
		config.EncodeLevel = jsonLevelEncoder
	} else {
		config.EncodeLevel = consoleLevelEncoder
	}
	return config
}

// ConsoleEncoder is used for display output.
func (f Format) ConsoleEncoder() zapcore.Encoder {
	if f == JSON {
		return zapcore.NewJSONEncoder(f.encoderConfig())
	}
	return zapcore.NewConsoleEncoder(f.encoderConfig())
}

// FileEncoder is used for rotated log files, which are always JSON.
func (Format) FileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(JSON.encoderConfig())
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("01-02|15:04:05.000") + "]")
}

func consoleLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
