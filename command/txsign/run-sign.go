// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/envelope"
	"github.com/bitmark-inc/txsign/transaction"
)

type encodeResult struct {
	Encoding transaction.Encoding `json:"encoding"`
	Length   int                  `json:"length"`
	Encoded  string               `json:"encoded"`
}

type signResult struct {
	Account   *account.Account  `json:"account"`
	Scheme    string            `json:"scheme"`
	Encoding  string            `json:"encoding"`
	Signature account.Signature `json:"signature"`
	Packed    string            `json:"packed,omitempty"`
	TxId      string            `json:"txId,omitempty"`
}

type verifyResult struct {
	Account  *account.Account `json:"account"`
	Scheme   string           `json:"scheme"`
	Verified bool             `json:"verified"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	r := checkRecord(c.String("input"), c.String("output"))
	encoded := m.signer.Encode(r)

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", r)
	}

	out := encodeResult{
		Encoding: m.signer.Encoding(),
		Length:   len(encoded),
		Encoded:  hex.EncodeToString(encoded),
	}
	return printJson(m.w, out)
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("seed"), c.String("private-key"), m.testnet)
	if nil != err {
		return err
	}
	r := checkRecord(c.String("input"), c.String("output"))

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", r)
		fmt.Fprintf(m.e, "signer: %s\n", privateKey.Account())
	}

	out := signResult{
		Account:  privateKey.Account(),
		Scheme:   m.signer.Scheme().Name(),
		Encoding: m.signer.Encoding().String(),
	}

	if c.Bool("envelope") {
		st, err := envelope.New(r, m.signer.Encoding(), privateKey, m.signer.Scheme())
		if nil != err {
			return err
		}
		packed, err := st.Pack()
		if nil != err {
			return err
		}
		out.Signature = st.Signature
		out.Packed = hex.EncodeToString(packed)
		out.TxId = packed.MakeLink().String()
	} else {
		signature, err := m.signer.Sign(r, privateKey)
		if nil != err {
			return err
		}
		out.Signature = signature
	}

	return printJson(m.w, out)
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := checkAccount(c.String("account"), m.testnet)
	if nil != err {
		return err
	}
	signature, err := checkSignature(c.String("signature"))
	if nil != err {
		return err
	}
	r := checkRecord(c.String("input"), c.String("output"))

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", r)
		fmt.Fprintf(m.e, "signature: %#v\n", signature)
	}

	out := verifyResult{
		Account:  signer,
		Scheme:   m.signer.Scheme().Name(),
		Verified: m.signer.Verify(r, signer, signature),
	}
	return printJson(m.w, out)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
