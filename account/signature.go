// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/txsign/fault"
)

// Signature - opaque signature bytes
type Signature []byte

// SignatureFromHex - decode hex text, any length is accepted here
func SignatureFromHex(s string) (Signature, error) {
	var signature Signature
	if err := signature.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}
	return signature, nil
}

// String - hex form for the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - hex form for the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// Scan - read a hex signature with the fmt scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHexDigit)
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

// MarshalText - convert signature to hex text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return fault.ErrCannotDecodeSignature
	}
	*signature = sig[:byteCount]
	return nil
}

func isHexDigit(c rune) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}
