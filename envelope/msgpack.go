// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/transaction"
)

// msgpack map with single letter keys
type msgpackEnvelope struct {
	Input     string `msgpack:"i"`
	Output    string `msgpack:"o"`
	Encoding  uint64 `msgpack:"e"`
	Signer    []byte `msgpack:"s"`
	Signature []byte `msgpack:"g"`
}

// ToMsgpack - the msgpack form of the envelope
func (st *SignedTransaction) ToMsgpack() ([]byte, error) {
	if nil == st.Record {
		return nil, fault.ErrMissingRecord
	}
	if nil == st.Signer || nil == st.Signer.AccountInterface {
		return nil, fault.ErrMissingKey
	}
	if !st.Encoding.Valid() {
		return nil, fault.ErrUnknownEncoding
	}
	if len(st.Record.Input()) > MaxFieldLength || len(st.Record.Output()) > MaxFieldLength {
		return nil, fault.ErrFieldTooLong
	}

	return msgpack.Marshal(msgpackEnvelope{
		Input:     st.Record.Input(),
		Output:    st.Record.Output(),
		Encoding:  uint64(st.Encoding),
		Signer:    st.Signer.Bytes(),
		Signature: st.Signature,
	})
}

// FromMsgpack - decode the msgpack form; the signature is not checked
func FromMsgpack(data []byte) (*SignedTransaction, error) {
	var m msgpackEnvelope
	if err := msgpack.Unmarshal(data, &m); nil != err {
		return nil, fault.ErrNotSignedTransaction
	}

	encoding := transaction.Encoding(m.Encoding)
	if !encoding.Valid() {
		return nil, fault.ErrUnknownEncoding
	}
	if len(m.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if len(m.Input) > MaxFieldLength || len(m.Output) > MaxFieldLength {
		return nil, fault.ErrFieldTooLong
	}

	signer, err := account.AccountFromBytes(m.Signer)
	if nil != err {
		return nil, err
	}

	st := &SignedTransaction{
		Record:    transaction.New(m.Input, m.Output),
		Encoding:  encoding,
		Signer:    signer,
		Signature: m.Signature,
	}
	return st, nil
}
