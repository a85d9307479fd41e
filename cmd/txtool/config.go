// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/legacytx/internal/log"
	"github.com/btcsuite/legacytx/internal/version"
	"github.com/btcsuite/legacytx/sampleconfig"
	"github.com/btcsuite/legacytx/txstore"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "txtool.conf"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "txtool.log"
	defaultLogLevel       = "info"
	defaultDbType         = "leveldb"
	defaultMaxTxSize      = 1024 * 1024
)

var (
	txtoolHomeDir     = btcutil.AppDataDir("txtool", false)
	defaultConfigFile = filepath.Join(txtoolHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(txtoolHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(txtoolHomeDir, defaultLogDirname)
	knownDbTypes      = txstore.SupportedEngines()
)

// config defines the configuration options for txtool.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	SampleConfig   bool   `long:"sampleconfig" description:"Print a sample configuration file and exit"`
	ConfigFile     string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir        string `short:"b" long:"datadir" description:"Directory to store the transaction database"`
	DbType         string `long:"dbtype" description:"Database backend to use for the transaction store {leveldb, pebble, bolt}"`
	LogDir         string `long:"logdir" description:"Directory to log output"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	TestNet3       bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool   `long:"regtest" description:"Use the regression test network"`
	ChangeAddress  string `long:"changeaddress" description:"Address receiving the change of the send command"`
	MaxTxSize      int    `long:"maxtxsize" description:"Largest raw transaction accepted by the decode and import commands, in bytes"`
	Dump           bool   `long:"dump" description:"Print decoded transactions as a full structure dump"`

	params *chaincfg.Params
}

// errExitEarly is returned by loadConfig when the requested output, such as
// the version or the sample config, has been produced and no command should
// run.
var errExitEarly = errors.New("exit requested")

// validDbType returns whether or not dbType is a supported database type.
func validDbType(dbType string) bool {
	return slices.Contains(knownDbTypes, dbType)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(txtoolHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !log.ValidLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		log.SetLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := log.SubsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, log.SupportedSubsystems())
		}

		// Validate log level.
		if !log.ValidLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		log.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in txtool functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.  The remaining positional arguments are returned.  Requested
// informational output goes to stdout and problems are reported on stderr.
func loadConfig(args []string, stdout, stderr io.Writer) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		DbType:     defaultDbType,
		MaxTxSize:  defaultMaxTxSize,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(stderr, err)
		}
		preParser.WriteHelp(stderr)
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Fprintln(stdout, appName, "version", version.String())
		return nil, nil, errExitEarly
	}

	if preCfg.SampleConfig {
		fmt.Fprint(stdout, sampleconfig.FileContents)
		return nil, nil, errExitEarly
	}

	// Load additional config from file.  A missing default config file is
	// not an error.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) || preCfg.ConfigFile != defaultConfigFile {
			fmt.Fprintf(stderr, "Error parsing config file: %v\n", err)
			parser.WriteHelp(stderr)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		parser.WriteHelp(stderr)
		return nil, nil, err
	}

	// invalid reports a validation failure the way the parser does.
	invalid := func(str string, a ...interface{}) (*config, []string, error) {
		err := fmt.Errorf("loadConfig: "+str, a...)
		fmt.Fprintln(stderr, err)
		parser.WriteHelp(stderr)
		return nil, nil, err
	}

	// The two test networks can't be selected simultaneously.
	if cfg.TestNet3 && cfg.RegressionTest {
		return invalid("the testnet and regtest params can't be used " +
			"together -- choose one of the two")
	}

	// Choose the active network params based on the testnet and regression
	// test net flags.
	cfg.params = &chaincfg.MainNetParams
	switch {
	case cfg.TestNet3:
		cfg.params = &chaincfg.TestNet3Params
	case cfg.RegressionTest:
		cfg.params = &chaincfg.RegressionNetParams
	}

	// Validate database type.
	if !validDbType(cfg.DbType) {
		return invalid("the specified database type [%v] is invalid -- "+
			"supported types %v", cfg.DbType, knownDbTypes)
	}

	if cfg.MaxTxSize <= 0 {
		return invalid("the maximum transaction size must be positive "+
			"-- parsed [%d]", cfg.MaxTxSize)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(stdout, "Supported subsystems",
			log.SupportedSubsystems())
		return nil, nil, errExitEarly
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return invalid("%v", err)
	}

	// Append the network type to the data and log directories so they are
	// "namespaced" per network.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir),
		cfg.params.Name)
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir),
		cfg.params.Name)

	// The change address must belong to the active network.
	if cfg.ChangeAddress != "" {
		addr, err := btcutil.DecodeAddress(cfg.ChangeAddress, cfg.params)
		if err != nil || !addr.IsForNet(cfg.params) {
			return invalid("the change address [%v] is not a valid "+
				"%s address", cfg.ChangeAddress, cfg.params.Name)
		}
	}

	return &cfg, remainingArgs, nil
}
