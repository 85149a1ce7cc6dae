// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheme

import (
	"bytes"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/txsign/fault"
)

type ed25519Scheme struct{}

// Ed25519 - the golang.org/x/crypto implementation
var Ed25519 Scheme = ed25519Scheme{}

func (ed25519Scheme) Name() string {
	return "ed25519"
}

// Sign - private key is the 64 byte seed followed by public key form
func (ed25519Scheme) Sign(message []byte, privateKey []byte) ([]byte, error) {
	if err := checkEd25519PrivateKey(privateKey); nil != err {
		return nil, err
	}
	return ed25519.Sign(privateKey, message), nil
}

func (ed25519Scheme) Verify(message []byte, publicKey []byte, signature []byte) bool {
	if ed25519.PublicKeySize != len(publicKey) || ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(publicKey, message, signature)
}

func (ed25519Scheme) GenerateKey(entropy io.Reader) ([]byte, []byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(entropy)
	if nil != err {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// the signing code trusts the public half stored in the private key,
// a mismatch would produce signatures that never verify
func checkEd25519PrivateKey(privateKey []byte) error {
	if ed25519.PrivateKeySize != len(privateKey) {
		return fault.ErrInvalidKeyLength
	}
	expected := ed25519.NewKeyFromSeed(privateKey[:ed25519.SeedSize])
	if !bytes.Equal(expected, privateKey) {
		return fault.ErrMismatchedPublicKey
	}
	return nil
}
