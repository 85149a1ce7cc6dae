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

// enumeration of supported key algorithms
const (
	reserved = iota // zero keytype is never issued
	ED25519  = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the public half of a key pair
//
// an account is the verification capability: anyone holding it can
// check signatures made by the matching private key
type Account struct {
	AccountInterface
}

// AccountInterface - operations available on every account type
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - account for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - decode the checksummed Base58 text form
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	key, err := stripChecksum(accountDecoded, true)
	if nil != err {
		return nil, err
	}
	return AccountFromBytes(key)
}

// AccountFromBytes - decode key variant followed by raw public key
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyAlgorithm, isTest, publicKey, err := splitKeyVariant(accountBytes, true)
	if nil != err {
		return nil, err
	}

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		account := &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: append([]byte{}, publicKey...),
			},
		}
		return account, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// UnmarshalText - convert Base58 JSON text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Equal - same algorithm, network and key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// ED25519
// -------

// IsTesting - whether the account is for a test network
func (account *ED25519Account) IsTesting() bool {
	return account.Test
}

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.ErrInvalidKeyLength
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrSignatureVerification
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrSignatureVerification
	}
	return nil
}

// Bytes - key variant followed by the public key
func (account *ED25519Account) Bytes() []byte {
	return append([]byte{keyVariant(ED25519, true, account.Test)}, account.PublicKey...)
}

// String - base58 encoding of encoded key with checksum
func (account *ED25519Account) String() string {
	return toBase58WithChecksum(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}
