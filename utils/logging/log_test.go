// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLoggerLevels(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("registry", NewWrappedCore(Trace, buf, Plain.ConsoleEncoder()))

	log.Debug("hidden")
	require.Empty(buf.String())

	log.Trace("shown", zap.Uint64("collectionID", 7))
	require.Contains(buf.String(), "shown")
	require.Contains(buf.String(), "TRACE")
	require.Contains(buf.String(), `"collectionID": 7`)
	require.Contains(buf.String(), "registry")

	require.False(log.Enabled(Debug))
	log.SetLevel(Verbo)
	require.True(log.Enabled(Debug))

	buf.Reset()
	log.Verbo("now shown")
	require.Contains(buf.String(), "VERBO")
}

func TestLoggerWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	child := log.With(zap.String("selector", "0x8da5cb5b"))

	child.Info("call")
	require.Contains(buf.String(), `"selector":"0x8da5cb5b"`)
	require.Contains(buf.String(), `"level":"INFO"`)
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	factory := NewFactory(Config{
		RotatingWriterConfig: RotatingWriterConfig{
			Directory: dir,
			MaxSize:   1,
		},
		DisableWriterDisplaying: true,
		LogLevel:                Info,
		DisplayLevel:            Off,
	})

	log, err := factory.Make("dispatch")
	require.NoError(err)

	_, err = factory.Make("dispatch")
	require.ErrorContains(err, "already exists")

	_, err = factory.Make("cli")
	require.NoError(err)
	require.Equal([]string{"cli", "dispatch"}, factory.GetLoggerNames())

	require.NoError(factory.SetLogLevel("dispatch", Warn))
	require.Error(factory.SetDisplayLevel("unknown", Info))

	log.Info("dropped")
	log.Warn("written")
	factory.Close()

	contents, err := os.ReadFile(filepath.Join(dir, "dispatch.log"))
	require.NoError(err)
	require.NotContains(string(contents), "dropped")
	require.Contains(string(contents), "written")
}
