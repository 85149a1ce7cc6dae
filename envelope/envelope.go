// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/scheme"
	"github.com/bitmark-inc/txsign/transaction"
)

// TagType - type code for packed envelopes
type TagType uint64

// enumerate the possible envelope types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	SignedTransactionTag = TagType(iota) // record + signer + signature

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed envelopes are just a byte slice
type Packed []byte

// MaxFieldLength - longest record input or output that can be packed
const MaxFieldLength = 16 * 1024 * 1024

// byte sizes for various fields
const (
	maxAccountLength   = 256
	maxSignatureLength = 8192
)

// SignedTransaction - a record, how it was encoded, who signed it and
// the signature
type SignedTransaction struct {
	Record    *transaction.Record  `json:"record"`
	Encoding  transaction.Encoding `json:"encoding"`
	Signer    *account.Account     `json:"signer"`
	Signature account.Signature    `json:"signature"`
}

// New - sign a record and wrap it in an envelope
func New(record *transaction.Record, encoding transaction.Encoding, privateKey *account.PrivateKey, s scheme.Scheme) (*SignedTransaction, error) {
	signer, err := transaction.NewSigner(s, encoding)
	if nil != err {
		return nil, err
	}

	signature, err := signer.Sign(record, privateKey)
	if nil != err {
		return nil, err
	}

	st := &SignedTransaction{
		Record:    record,
		Encoding:  encoding,
		Signer:    privateKey.Account(),
		Signature: signature,
	}
	return st, nil
}

// Check - verify the signature with the given scheme
func (st *SignedTransaction) Check(s scheme.Scheme) error {
	if nil == st.Record {
		return fault.ErrMissingRecord
	}
	if nil == st.Signer || nil == st.Signer.AccountInterface {
		return fault.ErrMissingKey
	}

	signer, err := transaction.NewSigner(s, st.Encoding)
	if nil != err {
		return err
	}
	if !signer.Verify(st.Record, st.Signer, st.Signature) {
		return fault.ErrSignatureVerification
	}
	return nil
}
