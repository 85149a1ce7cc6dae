// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheme

import (
	"bytes"
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	circled25519 "github.com/cloudflare/circl/sign/ed25519"
	"github.com/cloudflare/circl/sign/ed448"

	"github.com/bitmark-inc/txsign/fault"
)

// circl ed25519
// -------------

type circlEd25519Scheme struct{}

// CirclEd25519 - Ed25519 from cloudflare/circl, byte compatible with Ed25519
var CirclEd25519 Scheme = circlEd25519Scheme{}

func (circlEd25519Scheme) Name() string {
	return "circl-ed25519"
}

func (circlEd25519Scheme) Sign(message []byte, privateKey []byte) ([]byte, error) {
	if circled25519.PrivateKeySize != len(privateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	expected := circled25519.NewKeyFromSeed(privateKey[:circled25519.SeedSize])
	if !bytes.Equal(expected, privateKey) {
		return nil, fault.ErrMismatchedPublicKey
	}
	return circled25519.Sign(circled25519.PrivateKey(privateKey), message), nil
}

func (circlEd25519Scheme) Verify(message []byte, publicKey []byte, signature []byte) bool {
	if circled25519.PublicKeySize != len(publicKey) || circled25519.SignatureSize != len(signature) {
		return false
	}
	return circled25519.Verify(circled25519.PublicKey(publicKey), message, signature)
}

func (circlEd25519Scheme) GenerateKey(entropy io.Reader) ([]byte, []byte, error) {
	publicKey, privateKey, err := circled25519.GenerateKey(entropy)
	if nil != err {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// ed448
// -----

// empty context: plain Ed448 as in RFC 8032
const ed448Context = ""

type ed448Scheme struct{}

// Ed448 - Ed448 from cloudflare/circl
//
// private key is the 57 byte seed followed by the 57 byte public key
var Ed448 Scheme = ed448Scheme{}

func (ed448Scheme) Name() string {
	return "ed448"
}

func (ed448Scheme) Sign(message []byte, privateKey []byte) ([]byte, error) {
	if ed448.PrivateKeySize != len(privateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	expected := ed448.NewKeyFromSeed(privateKey[:ed448.SeedSize])
	if !bytes.Equal(expected, privateKey) {
		return nil, fault.ErrMismatchedPublicKey
	}
	return ed448.Sign(ed448.PrivateKey(privateKey), message, ed448Context), nil
}

func (ed448Scheme) Verify(message []byte, publicKey []byte, signature []byte) bool {
	if ed448.PublicKeySize != len(publicKey) || ed448.SignatureSize != len(signature) {
		return false
	}
	return ed448.Verify(ed448.PublicKey(publicKey), message, signature, ed448Context)
}

func (ed448Scheme) GenerateKey(entropy io.Reader) ([]byte, []byte, error) {
	publicKey, privateKey, err := ed448.GenerateKey(entropy)
	if nil != err {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// dilithium
// ---------

type dilithium3Scheme struct{}

// Dilithium3 - post-quantum signatures from cloudflare/circl
var Dilithium3 Scheme = dilithium3Scheme{}

func (dilithium3Scheme) Name() string {
	return "dilithium3"
}

func (dilithium3Scheme) Sign(message []byte, privateKey []byte) ([]byte, error) {
	if mode3.PrivateKeySize != len(privateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	var sk mode3.PrivateKey
	if err := sk.UnmarshalBinary(privateKey); nil != err {
		return nil, fault.ErrInvalidKeyType
	}
	signature := make([]byte, mode3.SignatureSize)
	mode3.SignTo(&sk, message, signature)
	return signature, nil
}

func (dilithium3Scheme) Verify(message []byte, publicKey []byte, signature []byte) bool {
	if mode3.PublicKeySize != len(publicKey) || mode3.SignatureSize != len(signature) {
		return false
	}
	var pk mode3.PublicKey
	if err := pk.UnmarshalBinary(publicKey); nil != err {
		return false
	}
	return mode3.Verify(&pk, message, signature)
}

func (dilithium3Scheme) GenerateKey(entropy io.Reader) ([]byte, []byte, error) {
	pk, sk, err := mode3.GenerateKey(entropy)
	if nil != err {
		return nil, nil, err
	}
	return pk.Bytes(), sk.Bytes(), nil
}
