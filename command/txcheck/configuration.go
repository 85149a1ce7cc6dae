// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txsign/chain"
	"github.com/bitmark-inc/txsign/configuration"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/scheme"
	"github.com/bitmark-inc/txsign/transaction"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultWorkers      = 4
	maximumWorkers      = 256
	defaultCacheSeconds = 300
	defaultRateLimit    = 0 // envelopes per second, zero is unlimited
	defaultRateBurst    = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "txcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - txcheck settings read from the Lua file
//
// a blank Encoding accepts any envelope encoding and a zero RateLimit
// leaves the workers unpaced
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Scheme        string               `gluamapper:"scheme" json:"scheme"`
	Encoding      string               `gluamapper:"encoding" json:"encoding"`
	Workers       int                  `gluamapper:"workers" json:"workers"`
	CacheSeconds  int                  `gluamapper:"cache_seconds" json:"cache_seconds"`
	RateLimit     float64              `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst     int                  `gluamapper:"rate_burst" json:"rate_burst"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Chain:         chain.Bitmark,
		Scheme:        scheme.Default.Name(),
		Encoding:      "",
		Workers:       defaultWorkers,
		CacheSeconds:  defaultCacheSeconds,
		RateLimit:     defaultRateLimit,
		RateBurst:     defaultRateBurst,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}

	// envelopes only carry account keys
	if _, err := scheme.LookupEd25519(options.Scheme); nil != err {
		return nil, err
	}

	if "" != options.Encoding {
		if _, err := transaction.EncodingFromString(options.Encoding); nil != err {
			return nil, err
		}
	}

	if options.Workers > maximumWorkers {
		return nil, fault.ErrInvalidCount
	}
	if options.Workers <= 0 {
		options.Workers = defaultWorkers
	}
	if options.RateLimit < 0 || options.RateBurst < 0 {
		return nil, fault.ErrInvalidCount
	}
	if 0 == options.RateBurst {
		options.RateBurst = defaultRateBurst
	}
	if options.CacheSeconds <= 0 {
		options.CacheSeconds = defaultCacheSeconds
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = configuration.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
