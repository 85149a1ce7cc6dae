// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/util"
)

// Encoding - version of the canonical byte form of a record
//
// the numeric value is stored in packed envelopes
type Encoding uint64

// enumerate the encodings
const (
	// null marks beginning of list - not used as an encoding
	NullEncoding = Encoding(iota)

	Concatenated   = Encoding(iota) // v1: input ++ output
	LengthPrefixed = Encoding(iota) // v2: each field prefixed by Varint64(length)

	// this item must be last
	InvalidEncoding = Encoding(iota)
)

// names used in configuration and command line flags
var encodingNames = map[Encoding]string{
	Concatenated:   "concatenated",
	LengthPrefixed: "length-prefixed",
}

// Encode - canonical bytes of a record under the default encoding
//
// a nil record encodes the same as a record with empty fields
func Encode(r *Record) []byte {
	return appendConcatenated(nil, r)
}

// Encode - canonical bytes of a record under this encoding
func (e Encoding) Encode(r *Record) ([]byte, error) {
	switch e {
	case Concatenated:
		return appendConcatenated(nil, r), nil
	case LengthPrefixed:
		return appendLengthPrefixed(nil, r), nil
	default:
		return nil, fault.ErrUnknownEncoding
	}
}

// Valid - check that the encoding is one of the known versions
func (e Encoding) Valid() bool {
	return e > NullEncoding && e < InvalidEncoding
}

// String - configuration name of the encoding
func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "invalid"
}

// MarshalText - encoding name for JSON
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fault.ErrUnknownEncoding
	}
	return []byte(e.String()), nil
}

// UnmarshalText - encoding from its name
func (e *Encoding) UnmarshalText(s []byte) error {
	encoding, err := EncodingFromString(string(s))
	if nil != err {
		return err
	}
	*e = encoding
	return nil
}

// EncodingFromString - convert a configuration name to an encoding
func EncodingFromString(name string) (Encoding, error) {
	for e, n := range encodingNames {
		if name == n {
			return e, nil
		}
	}
	return NullEncoding, fault.ErrUnknownEncoding
}

func appendConcatenated(buffer []byte, r *Record) []byte {
	if nil == r {
		return buffer
	}
	buffer = append(buffer, r.input...)
	return append(buffer, r.output...)
}

func appendLengthPrefixed(buffer []byte, r *Record) []byte {
	if nil == r {
		r = &Record{}
	}
	buffer = util.AppendVarint64(buffer, uint64(len(r.input)))
	buffer = append(buffer, r.input...)
	buffer = util.AppendVarint64(buffer, uint64(len(r.output)))
	return append(buffer, r.output...)
}
