// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/envelope"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/fixtures"
	"github.com/bitmark-inc/txsign/scheme"
	"github.com/bitmark-inc/txsign/transaction"
)

const (
	aliceBobPacked = "010105616c69636503626f622113d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a40dce241d1eae405b30ac49958c4fe6e4a21c554ff3d64d8e7c9704dd88bbbfd6f387c533ed5090d70e817d8b06a3a188a3d305545f096b7ffe0cc718c19fc030e"
	aliceBobTxId   = "e5df4544ffb625b49b88c1fad59b2577d5ae527e285dbdf6bf59745161c373b6"
	aliceBobCID    = "bafkrmifwopbwcululg77npk5fb7fflwvo4szxvp2ygejxnbfw37uiro74u"
	account1Base58 = "fZzH7BaVcqY7R2LtmvfEZGRPWJDstUaETkSPY8tRyAaxoftYMj"
	aliceBobSigned = `{"record":{"input":"alice","output":"bob"},"encoding":"concatenated","signer":"` + account1Base58 + `","signature":"` + fixtures.AliceBobSignature + `"}`
)

func aliceBob(t *testing.T) *envelope.SignedTransaction {
	st, err := envelope.New(transaction.New("alice", "bob"), transaction.Concatenated, fixtures.PrivateKey1, scheme.Ed25519)
	if nil != err {
		t.Fatalf("new envelope error: %s", err)
	}
	return st
}

func TestNew(t *testing.T) {
	st := aliceBob(t)
	assert.Equal(t, fixtures.AliceBobSignature, st.Signature.String(), "wrong signature")
	assert.True(t, st.Signer.Equal(fixtures.Account1), "wrong signer")
	assert.Equal(t, transaction.Concatenated, st.Encoding, "wrong encoding")
	assert.Nil(t, st.Check(scheme.Ed25519), "valid envelope rejected")
	assert.Nil(t, st.Check(scheme.CirclEd25519), "valid envelope rejected by circl")

	_, err := envelope.New(transaction.New("alice", "bob"), transaction.Concatenated, nil, scheme.Ed25519)
	assert.Equal(t, fault.ErrMissingKey, err, "wrong error")

	_, err = envelope.New(transaction.New("alice", "bob"), transaction.InvalidEncoding, fixtures.PrivateKey1, scheme.Ed25519)
	assert.Equal(t, fault.ErrUnknownEncoding, err, "wrong error")

	_, err = envelope.New(nil, transaction.Concatenated, fixtures.PrivateKey1, scheme.Ed25519)
	assert.Equal(t, fault.ErrMissingRecord, err, "wrong error")
}

func TestPack(t *testing.T) {
	st := aliceBob(t)

	packed, err := st.Pack()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, aliceBobPacked, hex.EncodeToString(packed), "wrong packed envelope")
	assert.Equal(t, envelope.SignedTransactionTag, packed.Type(), "wrong tag")

	txId, err := st.TxId()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, aliceBobTxId, txId.String(), "wrong tx id")
	assert.Equal(t, packed.MakeLink(), txId, "wrong link")

	c, err := st.CID()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, aliceBobCID, c.String(), "wrong CID")
}

func TestPackErrors(t *testing.T) {
	st := aliceBob(t)

	noRecord := *st
	noRecord.Record = nil
	_, err := noRecord.Pack()
	assert.Equal(t, fault.ErrMissingRecord, err, "wrong error")

	noSigner := *st
	noSigner.Signer = nil
	_, err = noSigner.Pack()
	assert.Equal(t, fault.ErrMissingKey, err, "wrong error")

	badEncoding := *st
	badEncoding.Encoding = transaction.NullEncoding
	_, err = badEncoding.Pack()
	assert.Equal(t, fault.ErrUnknownEncoding, err, "wrong error")

	longSignature := *st
	longSignature.Signature = make(account.Signature, 8193)
	_, err = longSignature.Pack()
	assert.Equal(t, fault.ErrSignatureTooLong, err, "wrong error")

	_, err = longSignature.TxId()
	assert.Equal(t, fault.ErrSignatureTooLong, err, "wrong error")
	_, err = longSignature.CID()
	assert.Equal(t, fault.ErrSignatureTooLong, err, "wrong error")
}

func TestUnpack(t *testing.T) {
	packed := envelope.Packed(fixtures.MustDecodeHex(aliceBobPacked))

	st, err := packed.Unpack()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "alice", st.Record.Input(), "wrong input")
	assert.Equal(t, "bob", st.Record.Output(), "wrong output")
	assert.Equal(t, transaction.Concatenated, st.Encoding, "wrong encoding")
	assert.Equal(t, account1Base58, st.Signer.String(), "wrong signer")
	assert.Equal(t, fixtures.AliceBobSignature, st.Signature.String(), "wrong signature")
	assert.Nil(t, st.Check(scheme.Ed25519), "unpacked envelope rejected")

	repacked, err := st.Pack()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, packed, repacked, "repack differs")
}

func TestUnpackLengthPrefixed(t *testing.T) {
	st, err := envelope.New(transaction.New("alice", "bob"), transaction.LengthPrefixed, fixtures.PrivateKey2, scheme.Ed25519)
	assert.Nil(t, err, "wrong error")

	packed, err := st.Pack()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, byte(transaction.LengthPrefixed), packed[1], "wrong encoding byte")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, transaction.LengthPrefixed, unpacked.Encoding, "wrong encoding")
	assert.Nil(t, unpacked.Check(scheme.Ed25519), "framed envelope rejected")

	// relabelled as concatenated the signature no longer matches
	unpacked.Encoding = transaction.Concatenated
	assert.Equal(t, fault.ErrSignatureVerification, unpacked.Check(scheme.Ed25519), "wrong error")
}

func TestUnpackErrors(t *testing.T) {
	valid := fixtures.MustDecodeHex(aliceBobPacked)

	tests := []struct {
		name   string
		packed []byte
		err    error
	}{
		{"empty", []byte{}, fault.ErrNotSignedTransaction},
		{"wrong tag", append([]byte{0x02}, valid[1:]...), fault.ErrNotSignedTransaction},
		{"null tag", append([]byte{0x00}, valid[1:]...), fault.ErrNotSignedTransaction},
		{"no encoding", valid[:1], fault.ErrTruncatedEnvelope},
		{"unknown encoding", append([]byte{0x01, 0x03}, valid[2:]...), fault.ErrUnknownEncoding},
		{"no input", valid[:2], fault.ErrTruncatedEnvelope},
		{"short input", valid[:5], fault.ErrTruncatedEnvelope},
		{"short account", valid[:20], fault.ErrTruncatedEnvelope},
		{"no signature", valid[:46], fault.ErrTruncatedEnvelope},
		{"short signature", valid[:len(valid)-1], fault.ErrTruncatedEnvelope},
		{"trailing data", append(append([]byte{}, valid...), 0x00), fault.ErrTrailingData},
		{"huge field", []byte{0x01, 0x01, 0xff, 0xff, 0xff, 0xff, 0x7f}, fault.ErrFieldTooLong},
	}

	for _, test := range tests {
		_, err := envelope.Packed(test.packed).Unpack()
		assert.Equal(t, test.err, err, "%s: wrong error", test.name)
	}

	// signer bytes hold a private key variant
	bad := append([]byte{}, valid...)
	bad[13] = 0x12
	_, err := envelope.Packed(bad).Unpack()
	assert.Equal(t, fault.ErrNotPublicKey, err, "wrong error")
	assert.True(t, fault.IsErrKey(err), "wrong error class")
}

func TestUnpackNotCanonical(t *testing.T) {
	valid := fixtures.MustDecodeHex(aliceBobPacked)

	// input length 5 written as a two byte varint
	longInput := append([]byte{0x01, 0x01, 0x85, 0x00}, valid[3:]...)

	// encoding 1 written as a two byte varint
	longEncoding := append([]byte{0x01, 0x81, 0x00}, valid[2:]...)

	// signer length 33 written as a two byte varint
	longSigner := append(append(append([]byte{}, valid[:12]...), 0xa1, 0x00), valid[13:]...)

	for i, packed := range [][]byte{longInput, longEncoding, longSigner} {
		_, err := envelope.Packed(packed).Unpack()
		assert.Equal(t, fault.ErrNotCanonical, err, "%d: wrong error", i)
		assert.True(t, fault.IsErrRecord(err), "%d: wrong error class", i)
	}
}

func TestFieldLengthLimit(t *testing.T) {
	longest := strings.Repeat("a", envelope.MaxFieldLength)
	tooLong := longest + "a"

	st := &envelope.SignedTransaction{
		Record:    transaction.New(longest, ""),
		Encoding:  transaction.Concatenated,
		Signer:    fixtures.Account1,
		Signature: fixtures.MustDecodeHex(fixtures.AliceBobSignature),
	}

	packed, err := st.Pack()
	assert.Nil(t, err, "wrong error")
	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "longest field cannot be unpacked")
	assert.Equal(t, envelope.MaxFieldLength, len(unpacked.Record.Input()), "wrong input length")

	data, err := st.ToMsgpack()
	assert.Nil(t, err, "wrong error")
	_, err = envelope.FromMsgpack(data)
	assert.Nil(t, err, "longest field cannot be decoded")

	for _, r := range []*transaction.Record{transaction.New(tooLong, ""), transaction.New("", tooLong)} {
		over := *st
		over.Record = r

		_, err = over.Pack()
		assert.Equal(t, fault.ErrFieldTooLong, err, "wrong pack error")
		_, err = over.ToMsgpack()
		assert.Equal(t, fault.ErrFieldTooLong, err, "wrong msgpack error")

		data, err := msgpack.Marshal(map[string]interface{}{
			"i": r.Input(),
			"o": r.Output(),
			"e": uint64(transaction.Concatenated),
			"s": fixtures.Account1.Bytes(),
			"g": fixtures.MustDecodeHex(fixtures.AliceBobSignature),
		})
		assert.Nil(t, err, "wrong error")
		_, err = envelope.FromMsgpack(data)
		assert.Equal(t, fault.ErrFieldTooLong, err, "wrong decode error")
	}
}

func TestCheckTampered(t *testing.T) {
	valid := fixtures.MustDecodeHex(aliceBobPacked)

	// each byte of the record fields and of the signature
	positions := []int{3, 4, 5, 6, 7, 9, 10, 11, 47, 80, 110}
	for _, p := range positions {
		tampered := append([]byte{}, valid...)
		tampered[p] ^= 0x01

		st, err := envelope.Packed(tampered).Unpack()
		if !assert.Nil(t, err, "byte %d: unpack error", p) {
			continue
		}
		assert.Equal(t, fault.ErrSignatureVerification, st.Check(scheme.Ed25519), "byte %d: tampering not detected", p)
	}

	st := aliceBob(t)
	st.Signer = fixtures.Account2
	assert.Equal(t, fault.ErrSignatureVerification, st.Check(scheme.Ed25519), "wrong signer accepted")

	assert.Equal(t, fault.ErrUnknownScheme, aliceBob(t).Check(nil), "wrong error")

	empty := envelope.SignedTransaction{}
	assert.Equal(t, fault.ErrMissingRecord, empty.Check(scheme.Ed25519), "wrong error")
	empty.Record = transaction.New("", "")
	assert.Equal(t, fault.ErrMissingKey, empty.Check(scheme.Ed25519), "wrong error")
}

func TestMsgpack(t *testing.T) {
	st := aliceBob(t)

	data, err := st.ToMsgpack()
	assert.Nil(t, err, "wrong error")

	decoded, err := envelope.FromMsgpack(data)
	assert.Nil(t, err, "wrong error")
	assert.True(t, st.Record.Equal(decoded.Record), "wrong record")
	assert.Equal(t, st.Encoding, decoded.Encoding, "wrong encoding")
	assert.True(t, st.Signer.Equal(decoded.Signer), "wrong signer")
	assert.Equal(t, st.Signature, decoded.Signature, "wrong signature")
	assert.Nil(t, decoded.Check(scheme.Ed25519), "decoded envelope rejected")

	p1, err := st.Pack()
	assert.Nil(t, err, "wrong error")
	p2, err := decoded.Pack()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, p1, p2, "msgpack round trip changed the packed form")

	_, err = envelope.FromMsgpack([]byte{0xc1})
	assert.Equal(t, fault.ErrNotSignedTransaction, err, "wrong error")

	bad := *st
	bad.Encoding = transaction.InvalidEncoding
	_, err = bad.ToMsgpack()
	assert.Equal(t, fault.ErrUnknownEncoding, err, "wrong error")
}

func TestJSON(t *testing.T) {
	st := aliceBob(t)

	buffer, err := json.Marshal(st)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, aliceBobSigned, string(buffer), "wrong JSON")

	var decoded envelope.SignedTransaction
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "wrong error")
	assert.True(t, st.Record.Equal(decoded.Record), "wrong record")
	assert.True(t, st.Signer.Equal(decoded.Signer), "wrong signer")
	assert.Equal(t, st.Signature, decoded.Signature, "wrong signature")
	assert.Equal(t, transaction.Concatenated, decoded.Encoding, "wrong encoding")
	assert.Nil(t, decoded.Check(scheme.Ed25519), "decoded envelope rejected")
}
