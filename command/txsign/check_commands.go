// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/envelope"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/keypair"
	"github.com/bitmark-inc/txsign/transaction"
)

// command line errors - keep in alphabetic order
var (
	ErrConflictingKeys     = fault.InvalidError("only one of seed or private key is allowed")
	ErrInvalidEnvelopeHex  = fault.InvalidError("packed envelope is not hex")
	ErrInvalidSignatureHex = fault.InvalidError("signature is not hex")
	ErrRequiredAccount     = fault.InvalidError("account is required")
	ErrRequiredEnvelope    = fault.InvalidError("packed envelope is required")
	ErrRequiredPrivateKey  = fault.InvalidError("seed or private key is required")
	ErrRequiredSeed        = fault.InvalidError("seed is required")
	ErrRequiredSignature   = fault.InvalidError("signature is required")
)

// record fields may be empty, an empty field is still a valid record
func checkRecord(input string, output string) *transaction.Record {
	return transaction.New(input, output)
}

func checkSeed(seed string, testnet bool) (*keypair.RawKeyPair, *keypair.KeyPair, error) {
	if "" == seed {
		return nil, nil, ErrRequiredSeed
	}
	return keypair.MakeRawKeyPairFromSeed(seed, testnet)
}

// exactly one of seed or private key
//
// a private key is either exactly 64 bytes of hex or Base58
func checkPrivateKey(seed string, privateKey string, testnet bool) (*account.PrivateKey, error) {
	if "" != seed && "" != privateKey {
		return nil, ErrConflictingKeys
	}

	if "" != seed {
		_, kp, err := checkSeed(seed, testnet)
		if nil != err {
			return nil, err
		}
		return kp.PrivateKey, nil
	}

	if "" == privateKey {
		return nil, ErrRequiredPrivateKey
	}

	if isHexKey(privateKey, ed25519.PrivateKeySize) {
		return keypair.PrivateKeyFromHex(privateKey, testnet)
	}

	key, err := account.PrivateKeyFromBase58(privateKey)
	if nil != err {
		return nil, err
	}
	if testnet != key.IsTesting() {
		return nil, fault.ErrKeyNetworkMismatch
	}
	return key, nil
}

// a hex public key of exactly 32 bytes or a Base58 account
func checkAccount(s string, testnet bool) (*account.Account, error) {
	if "" == s {
		return nil, ErrRequiredAccount
	}

	if isHexKey(s, ed25519.PublicKeySize) {
		return keypair.AccountFromHexPublicKey(s, testnet)
	}

	acc, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if testnet != acc.IsTesting() {
		return nil, fault.ErrKeyNetworkMismatch
	}
	return acc, nil
}

func checkSignature(s string) (account.Signature, error) {
	if "" == s {
		return nil, ErrRequiredSignature
	}
	signature, err := account.SignatureFromHex(s)
	if nil != err {
		return nil, ErrInvalidSignatureHex
	}
	return signature, nil
}

func checkPacked(s string) (envelope.Packed, error) {
	if "" == s {
		return nil, ErrRequiredEnvelope
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, ErrInvalidEnvelopeHex
	}
	return envelope.Packed(b), nil
}

// true if s is the hex form of exactly size bytes
func isHexKey(s string, size int) bool {
	if 2*size != len(s) {
		return false
	}
	_, err := hex.DecodeString(s)
	return nil == err
}
