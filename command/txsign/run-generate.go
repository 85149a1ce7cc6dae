// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/txsign/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := keypair.MakeRawKeyPair(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rawKeyPair: %#v\n", rawKeyPair)
	}

	return printJson(m.w, rawKeyPair)
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := checkSeed(c.String("seed"), m.testnet)
	if nil != err {
		return err
	}

	return printJson(m.w, rawKeyPair)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
