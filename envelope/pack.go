// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/util"
)

// Pack - Varint64(tag) followed by fields in order as struct above
// with signature last
//
// the signature is not checked, use Check for that
func (st *SignedTransaction) Pack() (Packed, error) {
	if nil == st.Record {
		return nil, fault.ErrMissingRecord
	}
	if nil == st.Signer || nil == st.Signer.AccountInterface {
		return nil, fault.ErrMissingKey
	}
	if !st.Encoding.Valid() {
		return nil, fault.ErrUnknownEncoding
	}
	if len(st.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if len(st.Record.Input()) > MaxFieldLength || len(st.Record.Output()) > MaxFieldLength {
		return nil, fault.ErrFieldTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(SignedTransactionTag))
	message = appendUint64(message, uint64(st.Encoding))
	message = appendString(message, st.Record.Input())
	message = appendString(message, st.Record.Output())
	message = appendBytes(message, st.Signer.Bytes())

	// Signature Last
	return appendBytes(message, st.Signature), nil
}

// Type - returns the envelope type code
func (packed Packed) Type() TagType {
	tag, n := util.FromVarint64(packed)
	if 0 == n {
		return NullTag
	}
	return TagType(tag)
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}
