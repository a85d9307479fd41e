// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/legacytx/internal/version"
	"github.com/btcsuite/legacytx/sampleconfig"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes contents to a config file in a temporary directory
// and returns its path.
func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), defaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	dataDir, logDir := t.TempDir(), t.TempDir()
	cfg, args, err := loadConfig([]string{"-b", dataDir, "--logdir",
		logDir, "balance"}, io.Discard, io.Discard)
	require.NoError(t, err)

	require.Equal(t, []string{"balance"}, args)
	require.Equal(t, defaultDbType, cfg.DbType)
	require.Equal(t, defaultMaxTxSize, cfg.MaxTxSize)
	require.Same(t, &chaincfg.MainNetParams, cfg.params)
	require.Equal(t, filepath.Join(dataDir, "mainnet"), cfg.DataDir)
	require.Equal(t, filepath.Join(logDir, "mainnet"), cfg.LogDir)
}

func TestLoadConfigFile(t *testing.T) {
	configFile := writeConfigFile(t, "[Application Options]\n"+
		"dbtype=bolt\n"+
		"regtest=true\n"+
		"maxtxsize=2048\n")
	dataDir := t.TempDir()

	cfg, args, err := loadConfig([]string{"-C", configFile, "-b", dataDir,
		"send", "10", "addr"}, io.Discard, io.Discard)
	require.NoError(t, err)
	require.Equal(t, []string{"send", "10", "addr"}, args)
	require.Equal(t, "bolt", cfg.DbType)
	require.Equal(t, 2048, cfg.MaxTxSize)
	require.Same(t, &chaincfg.RegressionNetParams, cfg.params)
	require.Equal(t, filepath.Join(dataDir, "regtest"), cfg.DataDir)

	// Command line options take precedence over the config file.
	cfg, _, err = loadConfig([]string{"-C", configFile, "-b", dataDir,
		"--dbtype", "pebble", "balance"}, io.Discard, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "pebble", cfg.DbType)
}

func TestLoadConfigErrors(t *testing.T) {
	dataDir := t.TempDir()
	badConfig := writeConfigFile(t, "[Application Options]\nnosuchoption=1\n")

	tests := []struct {
		name string
		args []string
	}{
		{"both test networks", []string{"--testnet", "--regtest"}},
		{"unknown database", []string{"--dbtype", "sqlite"}},
		{"bad debug level", []string{"-d", "loud"}},
		{"bad subsystem", []string{"-d", "NOPE=debug"}},
		{"bad pair", []string{"-d", "TXTL=debug,info"}},
		{"bad max size", []string{"--maxtxsize", "0"}},
		{"unknown flag", []string{"--nosuchflag"}},
		{"missing explicit config", []string{"-C",
			filepath.Join(dataDir, "missing.conf")}},
		{"bad config option", []string{"-C", badConfig}},
		{"change address for other net", []string{"--regtest",
			"--changeaddress", "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"}},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		args := append([]string{"-b", dataDir}, test.args...)
		_, _, err := loadConfig(args, io.Discard, io.Discard)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if errors.Is(err, errExitEarly) {
			t.Errorf("%s: unexpected early exit", test.name)
		}
	}
}

func TestLoadConfigEarlyExit(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-V"}, "version " + version.String()},
		{[]string{"-d", "show"}, "TXST"},
		{[]string{"--sampleconfig"}, "[Application Options]"},
	}

	for _, test := range tests {
		var stdout bytes.Buffer
		_, _, err := loadConfig(test.args, &stdout, io.Discard)
		require.ErrorIs(t, err, errExitEarly)
		require.Contains(t, stdout.String(), test.want)
	}
}

// TestSampleConfig ensures every option documented in the sample config file
// is one txtool understands and that the file itself loads.
func TestSampleConfig(t *testing.T) {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)

	var documented int
	for _, line := range strings.Split(sampleconfig.FileContents, "\n") {
		name, _, ok := strings.Cut(strings.TrimPrefix(line, "; "), "=")
		if !ok || !strings.HasPrefix(line, "; ") || strings.Contains(name, " ") {
			continue
		}
		documented++
		if parser.FindOptionByLongName(name) == nil {
			t.Errorf("sample config documents unknown option %q", name)
		}
	}
	require.NotZero(t, documented)

	configFile := writeConfigFile(t, sampleconfig.FileContents)
	_, _, err := loadConfig([]string{"-C", configFile, "-b", t.TempDir()},
		io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	defer parseAndSetDebugLevels(defaultLogLevel)

	require.NoError(t, parseAndSetDebugLevels("debug"))
	require.NoError(t, parseAndSetDebugLevels("TXTL=trace,TXST=warn"))
	require.Error(t, parseAndSetDebugLevels("TXTL=bogus"))
}
