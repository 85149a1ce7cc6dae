// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/keypair"
)

const (
	testSeed       = "9J877LVjhr3Xxd2nGzRVRVNUZpSKJF4TH"
	testAccount    = "f7nuKToBByL3jEcArZWoB9PJ8MVmGPjrYkW88v3Yw8p7G5Sxhy"
	testPrivateKey = "4534075cbcfc6ada1bb6b9e53d53f72341746031d9d17a3089a117766e7cda9e9bdf52f23deb941ea23cec982c24a5c811d321e71f6df56508bd511f66311e06"
)

func TestMakeRawKeyPairFromSeed(t *testing.T) {
	raw, kp, err := keypair.MakeRawKeyPairFromSeed(testSeed, true)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, testSeed, raw.Seed, "wrong seed")
	assert.Equal(t, testAccount, raw.Account, "wrong account")
	assert.Equal(t, testPrivateKey, raw.PrivateKey, "wrong private key")
	assert.Equal(t, testPrivateKey[64:], raw.PublicKey, "wrong public key")

	assert.Equal(t, testAccount, kp.Account.String(), "wrong key pair account")
	assert.Equal(t, testPrivateKey, hex.EncodeToString(kp.PrivateKey.PrivateKeyBytes()), "wrong key pair private key")
}

func TestMakeRawKeyPairFromSeedWrongNetwork(t *testing.T) {
	_, _, err := keypair.MakeRawKeyPairFromSeed(testSeed, false)
	assert.Equal(t, fault.ErrKeyNetworkMismatch, err, "wrong error")
	assert.True(t, fault.IsErrKey(err), "wrong error class")
}

func TestMakeRawKeyPair(t *testing.T) {
	for _, test := range []bool{false, true} {
		raw, kp, err := keypair.MakeRawKeyPair(test)
		assert.Nil(t, err, "wrong error")
		assert.Equal(t, test, kp.PrivateKey.IsTesting(), "wrong network")
		assert.Equal(t, test, kp.Account.IsTesting(), "wrong account network")

		again, _, err := keypair.MakeRawKeyPairFromSeed(raw.Seed, test)
		assert.Nil(t, err, "wrong error")
		assert.Equal(t, raw, again, "seed does not reproduce key pair")
	}
}

func TestAccountFromHexPublicKey(t *testing.T) {
	acc, err := keypair.AccountFromHexPublicKey(testPrivateKey[64:], true)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, testAccount, acc.String(), "wrong account")

	_, err = keypair.AccountFromHexPublicKey("zz", true)
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "wrong error")

	_, err = keypair.AccountFromHexPublicKey(testPrivateKey[66:], true)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "wrong error")
}

func TestPrivateKeyFromHex(t *testing.T) {
	k, err := keypair.PrivateKeyFromHex(testPrivateKey, true)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, testAccount, k.Account().String(), "wrong account")

	_, err = keypair.PrivateKeyFromHex(testPrivateKey[:64], true)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "wrong error")

	_, err = keypair.PrivateKeyFromHex("xyz", true)
	assert.Equal(t, fault.ErrCannotDecodePrivateKey, err, "wrong error")
}
