// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/txsign/envelope"
)

type envelopeResult struct {
	TxId        string                      `json:"txId"`
	CID         string                      `json:"cid"`
	Packed      string                      `json:"packed,omitempty"`
	Transaction *envelope.SignedTransaction `json:"transaction,omitempty"`
	Verified    *bool                       `json:"verified,omitempty"`
}

func runPack(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("seed"), c.String("private-key"), m.testnet)
	if nil != err {
		return err
	}
	r := checkRecord(c.String("input"), c.String("output"))

	st, err := envelope.New(r, m.signer.Encoding(), privateKey, m.signer.Scheme())
	if nil != err {
		return err
	}
	packed, err := st.Pack()
	if nil != err {
		return err
	}

	out, err := describe(packed, nil)
	if nil != err {
		return err
	}
	out.Packed = hex.EncodeToString(packed)
	return printJson(m.w, out)
}

func runUnpack(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkPacked(c.String("hex"))
	if nil != err {
		return err
	}

	st, err := packed.Unpack()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "envelope: %d bytes\n", len(packed))
	}

	out, err := describe(packed, st)
	if nil != err {
		return err
	}
	return printJson(m.w, out)
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkPacked(c.String("hex"))
	if nil != err {
		return err
	}

	st, err := packed.Unpack()
	if nil != err {
		return err
	}

	// the envelope carries its own encoding, only the scheme comes from the flags
	err = st.Check(m.signer.Scheme())
	if nil != err {
		return err
	}

	out, err := describe(packed, st)
	if nil != err {
		return err
	}
	verified := true
	out.Verified = &verified
	return printJson(m.w, out)
}

func describe(packed envelope.Packed, st *envelope.SignedTransaction) (*envelopeResult, error) {
	c, err := packed.CID()
	if nil != err {
		return nil, err
	}
	out := &envelopeResult{
		TxId:        packed.MakeLink().String(),
		CID:         c.String(),
		Transaction: st,
	}
	return out, nil
}
