// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"bytes"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/transaction"
	"github.com/bitmark-inc/txsign/util"
)

// Unpack - turn a byte slice into a signed transaction
//
// the whole slice must be consumed and must be exactly what Pack
// produces for the result, so each envelope has a single TxId; the
// signature is not checked
func (packed Packed) Unpack() (*SignedTransaction, error) {

	tag, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, fault.ErrNotSignedTransaction
	}
	if SignedTransactionTag != TagType(tag) {
		return nil, fault.ErrNotSignedTransaction
	}

	// encoding
	e, encodingLength := util.FromVarint64(packed[n:])
	if 0 == encodingLength {
		return nil, fault.ErrTruncatedEnvelope
	}
	n += encodingLength
	encoding := transaction.Encoding(e)
	if !encoding.Valid() {
		return nil, fault.ErrUnknownEncoding
	}

	input, n, err := field(packed, n, MaxFieldLength)
	if nil != err {
		return nil, err
	}

	output, n, err := field(packed, n, MaxFieldLength)
	if nil != err {
		return nil, err
	}

	// signer public key
	signerBytes, n, err := field(packed, n, maxAccountLength)
	if nil != err {
		return nil, err
	}
	signer, err := account.AccountFromBytes(signerBytes)
	if nil != err {
		return nil, err
	}

	// signature is last
	signatureBytes, n, err := field(packed, n, maxSignatureLength)
	if nil != err {
		return nil, err
	}

	if n != len(packed) {
		return nil, fault.ErrTrailingData
	}

	st := &SignedTransaction{
		Record:    transaction.New(string(input), string(output)),
		Encoding:  encoding,
		Signer:    signer,
		Signature: append(account.Signature{}, signatureBytes...),
	}

	// reject over-long varints and any other alternative spelling
	repacked, err := st.Pack()
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(repacked, packed) {
		return nil, fault.ErrNotCanonical
	}
	return st, nil
}

// read one Varint64(length) prefixed field starting at offset n
//
// returns the field and the offset just past it
func field(packed Packed, n int, maximum int) ([]byte, int, error) {
	if n >= len(packed) {
		return nil, n, fault.ErrTruncatedEnvelope
	}
	length, lengthSize := util.ClippedVarint64(packed[n:], maximum)
	if 0 == lengthSize {
		// either too short to hold the varint or out of range
		if _, count := util.FromVarint64(packed[n:]); 0 != count {
			return nil, n, fault.ErrFieldTooLong
		}
		return nil, n, fault.ErrTruncatedEnvelope
	}
	n += lengthSize
	if n+length > len(packed) {
		return nil, n, fault.ErrTruncatedEnvelope
	}
	return packed[n : n+length], n + length, nil
}
