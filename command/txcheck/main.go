// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/txsign/chain"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/scheme"
	"github.com/bitmark-inc/txsign/transaction"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] --config-file=FILE FILE...", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	if 0 == len(arguments) {
		exitwithstatus.Message("%s: no envelope files given", program)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	v, err := newVerifier(masterConfiguration, logger.New("worker"))
	if nil != err {
		log.Criticalf("verifier setup error: %s", err)
		exitwithstatus.Message("%s: verifier setup error: %s", program, err)
	}

	if len(options["verbose"]) > 0 {
		fmt.Fprintf(os.Stderr, "chain: %s  scheme: %s  workers: %d  files: %d\n",
			masterConfiguration.Chain,
			v.scheme.Name(),
			masterConfiguration.Workers,
			len(arguments),
		)
	}

	results := v.Run(arguments, masterConfiguration.Workers)
	s := v.Summarise(results)

	if err := printResults(os.Stdout, results, s); nil != err {
		log.Criticalf("output error: %s", err)
		exitwithstatus.Message("%s: output error: %s", program, err)
	}

	log.Infof("files: %d  valid: %d  invalid: %d  root: %s", s.Files, s.Valid, s.Invalid, s.MerkleRoot)

	if 0 != s.Invalid {
		exitwithstatus.Exit(1)
	}
}

func newVerifier(configuration *Configuration, log *logger.L) (*verifier, error) {
	s, err := scheme.LookupEd25519(configuration.Scheme)
	if nil != err {
		return nil, err
	}

	encoding := transaction.NullEncoding
	if "" != configuration.Encoding {
		encoding, err = transaction.EncodingFromString(configuration.Encoding)
		if nil != err {
			return nil, err
		}
	}

	expiration := time.Duration(configuration.CacheSeconds) * time.Second

	limit := rate.Inf
	if configuration.RateLimit > 0 {
		limit = rate.Limit(configuration.RateLimit)
	}

	v := &verifier{
		log:      log,
		scheme:   s,
		encoding: encoding,
		signers:  newSignerCache(chain.IsTesting(configuration.Chain), expiration),
		limiter:  rate.NewLimiter(limit, configuration.RateBurst),
	}
	return v, nil
}

// one JSON object per line
func printResults(w io.Writer, results []result, s summary) error {
	encoder := json.NewEncoder(w)
	for _, r := range results {
		if err := encoder.Encode(r); nil != err {
			return err
		}
	}
	return encoder.Encode(s)
}
