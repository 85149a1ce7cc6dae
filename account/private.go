// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/util"
)

// PrivateKey - the signing half of a key pair
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - operations available on every private key type
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	PrivateKeyBytes() []byte
	Bytes() []byte
	String() string
	IsTesting() bool
	MarshalText() ([]byte, error)
}

// ED25519PrivateKey - for ed25519 keys
//
// PrivateKey holds the 64 byte form: seed followed by public key
type ED25519PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// PrivateKeyFromBase58 - decode the checksummed Base58 text form
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(privateKeyDecoded) {
		return nil, fault.ErrCannotDecodePrivateKey
	}

	key, err := stripChecksum(privateKeyDecoded, false)
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromBytes(key)
}

// PrivateKeyFromBytes - decode key variant followed by raw private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	keyAlgorithm, isTest, priv, err := splitKeyVariant(privateKeyBytes, false)
	if nil != err {
		return nil, err
	}

	switch keyAlgorithm {
	case ED25519:
		return NewED25519PrivateKey(priv, isTest)
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// NewED25519PrivateKey - wrap a raw 64 byte ed25519 private key
//
// the embedded public half must match the seed half, otherwise every
// signature made with the key would fail to verify
func NewED25519PrivateKey(priv []byte, test bool) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(priv) {
		return nil, fault.ErrInvalidKeyLength
	}
	expected := ed25519.NewKeyFromSeed(priv[:ed25519.SeedSize])
	if !bytes.Equal(expected, priv) {
		return nil, fault.ErrMismatchedPublicKey
	}

	privateKey := &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       test,
			PrivateKey: append([]byte{}, priv...),
		},
	}
	return privateKey, nil
}

// UnmarshalText - convert Base58 JSON text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	a, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = a.PrivateKeyInterface
	return nil
}

// ED25519
// -------

// IsTesting - whether the private key is for a test network
func (privateKey *ED25519PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// Account - the corresponding public half
func (privateKey *ED25519PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:]
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: append([]byte{}, publicKey...),
		},
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Bytes - key variant followed by the private key
func (privateKey *ED25519PrivateKey) Bytes() []byte {
	return append([]byte{keyVariant(ED25519, false, privateKey.Test)}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key with checksum
func (privateKey *ED25519PrivateKey) String() string {
	return toBase58WithChecksum(privateKey.Bytes())
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey ED25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
