// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/scheme"
)

// Signer - signs and verifies records with one scheme and encoding
//
// a Signer has no mutable state and may be shared between goroutines;
// the zero value has no scheme, so it cannot sign and verifies nothing
type Signer struct {
	scheme   scheme.Scheme
	encoding Encoding
}

// the Ed25519, Concatenated signer used by the package level functions
var defaultSigner = &Signer{
	scheme:   scheme.Ed25519,
	encoding: Concatenated,
}

// NewSigner - create a signer for a particular scheme and encoding
func NewSigner(s scheme.Scheme, encoding Encoding) (*Signer, error) {
	if nil == s {
		return nil, fault.ErrUnknownScheme
	}
	if !encoding.Valid() {
		return nil, fault.ErrUnknownEncoding
	}
	return &Signer{
		scheme:   s,
		encoding: encoding,
	}, nil
}

// DefaultSigner - Ed25519 over the Concatenated encoding
func DefaultSigner() *Signer {
	return defaultSigner
}

// Sign - sign a record with the default signer
func Sign(r *Record, privateKey *account.PrivateKey) (account.Signature, error) {
	return defaultSigner.Sign(r, privateKey)
}

// Verify - verify a record signature with the default signer
func Verify(r *Record, signer *account.Account, signature account.Signature) bool {
	return defaultSigner.Verify(r, signer, signature)
}

// Scheme - the signature algorithm
func (s *Signer) Scheme() scheme.Scheme {
	return s.scheme
}

// Encoding - the record encoding that is signed
func (s *Signer) Encoding() Encoding {
	return s.encoding
}

// Encode - the exact bytes this signer passes to its scheme
func (s *Signer) Encode(r *Record) []byte {
	switch s.encoding {
	case LengthPrefixed:
		return appendLengthPrefixed(nil, r)
	default:
		return appendConcatenated(nil, r)
	}
}

// Sign - sign the encoded record with a private key
func (s *Signer) Sign(r *Record, privateKey *account.PrivateKey) (account.Signature, error) {
	if nil == privateKey || nil == privateKey.PrivateKeyInterface {
		return nil, fault.ErrMissingKey
	}
	return s.SignRaw(r, privateKey.PrivateKeyBytes())
}

// SignRaw - sign the encoded record with raw private key bytes in the
// form required by the scheme
func (s *Signer) SignRaw(r *Record, privateKey []byte) (account.Signature, error) {
	if nil == s.scheme {
		return nil, fault.ErrUnknownScheme
	}
	if nil == r {
		return nil, fault.ErrMissingRecord
	}
	if 0 == len(privateKey) {
		return nil, fault.ErrMissingKey
	}

	signature, err := s.scheme.Sign(s.Encode(r), privateKey)
	if nil != err {
		return nil, err
	}
	return signature, nil
}

// Verify - check a signature against the freshly encoded record
//
// false for any failure, including nil or malformed arguments
func (s *Signer) Verify(r *Record, signer *account.Account, signature account.Signature) bool {
	if nil == signer || nil == signer.AccountInterface {
		return false
	}
	return s.VerifyRaw(r, signer.PublicKeyBytes(), signature)
}

// VerifyRaw - check a signature using raw public key bytes
func (s *Signer) VerifyRaw(r *Record, publicKey []byte, signature []byte) bool {
	if nil == s.scheme || nil == r || 0 == len(publicKey) || 0 == len(signature) {
		return false
	}
	return s.scheme.Verify(s.Encode(r), publicKey, signature)
}
