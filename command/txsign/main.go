// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/txsign/chain"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/scheme"
	"github.com/bitmark-inc/txsign/transaction"
)

type metadata struct {
	network string
	testnet bool
	verbose bool
	signer  *transaction.Signer
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "txsign"
	app.Usage = "sign and verify input/output transaction records"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " key `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "scheme, s",
			Value: scheme.Ed25519.Name(),
			Usage: " signature `SCHEME` [" + strings.Join(scheme.Ed25519Names(), "|") + "]",
		},
		cli.BoolFlag{
			Name:  "framed, f",
			Usage: " sign the length-prefixed record encoding",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed and key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "account",
			Usage:     "show the account and keys derived from a seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, S",
					Value: "",
					Usage: "*Base58 `SEED`",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "encode",
			Usage:     "show the exact bytes that are signed for a record",
			ArgsUsage: "\n   (* = required)",
			Flags:     recordFlags(),
			Action:    runEncode,
		},
		{
			Name:      "sign",
			Usage:     "sign a record",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append(append(keyFlags(), recordFlags()...),
				cli.BoolFlag{
					Name:  "envelope, E",
					Usage: " also output the packed envelope",
				},
			),
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "verify a record signature",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*signer Base58 account or hex public `KEY`",
				},
				cli.StringFlag{
					Name:  "signature, g",
					Value: "",
					Usage: "*hex `SIGNATURE`",
				},
			}, recordFlags()...),
			Action: runVerify,
		},
		{
			Name:      "pack",
			Usage:     "sign a record and output the packed envelope",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     append(keyFlags(), recordFlags()...),
			Action:    runPack,
		},
		{
			Name:      "unpack",
			Usage:     "decode a packed envelope without verifying it",
			ArgsUsage: "\n   (* = required)",
			Flags:     envelopeFlags(),
			Action:    runUnpack,
		},
		{
			Name:      "check",
			Usage:     "decode a packed envelope and verify its signature",
			ArgsUsage: "\n   (* = required)",
			Flags:     envelopeFlags(),
			Action:    runCheck,
		},
		{
			Name:      "version",
			Usage:     "display txsign version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = chain.Bitmark
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fault.ErrInvalidChain
		}

		// keys come from seeds and accounts, so only Ed25519 backends
		s, err := scheme.LookupEd25519(c.GlobalString("scheme"))
		if nil != err {
			return err
		}

		encoding := transaction.Concatenated
		if c.GlobalBool("framed") {
			encoding = transaction.LengthPrefixed
		}

		signer, err := transaction.NewSigner(s, encoding)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "network: %s\n", network)
			fmt.Fprintf(e, "scheme: %s\n", s.Name())
			fmt.Fprintf(e, "encoding: %s\n", encoding)
		}

		c.App.Metadata["config"] = &metadata{
			network: network,
			testnet: chain.IsTesting(network),
			verbose: verbose,
			signer:  signer,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}

func recordFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Value: "",
			Usage: " record input `STRING`",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "",
			Usage: " record output `STRING`",
		},
	}
}

func keyFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "seed, S",
			Value: "",
			Usage: "+Base58 `SEED`",
		},
		cli.StringFlag{
			Name:  "private-key, k",
			Value: "",
			Usage: "+Base58 or hex private `KEY`",
		},
	}
}

func envelopeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "hex, x",
			Value: "",
			Usage: "*packed envelope `HEX`",
		},
	}
}
