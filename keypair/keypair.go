// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/fault"
)

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	Account    *account.Account
	PrivateKey *account.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewSeed - create a new v2 seed from secure random data
func NewSeed(test bool) (string, error) {
	return account.NewBase58EncodedSeedV2(test)
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *KeyPair, error) {
	seed, err := NewSeed(test)
	if err != nil {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed, test)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
//
// the network encoded in the seed must match the requested network
func MakeRawKeyPairFromSeed(seed string, test bool) (*RawKeyPair, *KeyPair, error) {

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}
	if test != privateKey.IsTesting() {
		return nil, nil, fault.ErrKeyNetworkMismatch
	}

	acc := privateKey.Account()

	keyPair := KeyPair{
		Seed:       seed,
		Account:    acc,
		PrivateKey: privateKey,
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		Account:    acc.String(),
		PublicKey:  hex.EncodeToString(acc.PublicKeyBytes()),
		PrivateKey: hex.EncodeToString(privateKey.PrivateKeyBytes()),
	}

	return &rawKeyPair, &keyPair, nil
}

// AccountFromHexPublicKey - create an account from a hexadecimal public key
func AccountFromHexPublicKey(publicKey string, test bool) (*account.Account, error) {

	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	if ed25519.PublicKeySize != len(k) {
		return nil, fault.ErrInvalidKeyLength
	}

	account := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      test,
			PublicKey: k,
		},
	}
	return account, nil
}

// PrivateKeyFromHex - create a private key from its hexadecimal 64 byte form
func PrivateKeyFromHex(privateKey string, test bool) (*account.PrivateKey, error) {

	k, err := hex.DecodeString(privateKey)
	if nil != err {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	return account.NewED25519PrivateKey(k, test)
}
