// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevels(t *testing.T) {
	defer SetLogLevels("info")

	SetLogLevels("debug")
	for _, id := range SupportedSubsystems() {
		require.Equal(t, btclog.LevelDebug, SubsystemLoggers[id].Level(), id)
	}

	// Unknown subsystems are ignored and bad levels fall back to info.
	SetLogLevel("NOPE", "trace")
	SetLogLevel("TXTL", "loud")
	require.Equal(t, btclog.LevelInfo, TxtlLog.Level())

	require.True(t, ValidLogLevel("warn"))
	require.False(t, ValidLogLevel("loud"))
	require.Equal(t, []string{"TXST", "TXTL"}, SupportedSubsystems())
}

func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "txtool.log")
	require.NoError(t, InitLogRotator(logFile))
	defer CloseLogRotator()
	require.NotNil(t, LogRotator)
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTestLogger(&buf, "TEST")
	l.Tracef("hello %d", 1)
	require.Contains(t, buf.String(), "[TRC] TEST: hello 1")
}

func TestPickNoun(t *testing.T) {
	require.Equal(t, "input", PickNoun(1, "input", "inputs"))
	require.Equal(t, "inputs", PickNoun(0, "input", "inputs"))
	require.Equal(t, "inputs", PickNoun(2, "input", "inputs"))
}
