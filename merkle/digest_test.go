// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/merkle"
)

func TestScanFmt(t *testing.T) {

	// big endian
	stringDigest := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"

	var d merkle.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	// bytes as little endian format
	expected := merkle.Digest{
		0xf8, 0xb6, 0x16, 0x4d,
		0x19, 0xe2, 0xf6, 0x5a,
		0x2a, 0xae, 0x44, 0x8f,
		0x78, 0x7f, 0xe6, 0x6d,
		0x61, 0xe5, 0x7a, 0x48,
		0xc0, 0xc6, 0x77, 0x1b,
		0x1e, 0x92, 0x0b, 0x44,
		0x00, 0x00, 0x00, 0x00,
	}

	if d != expected {
		t.Errorf("digest(LE) = %#v expected %#v", d, expected)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SHA3-256:"+stringDigest+">" {
		t.Errorf("hash-v: digest = %s expected %s", s, stringDigest)
	}
}

func TestScanInvalid(t *testing.T) {
	for _, s := range []string{"00", "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8ff"} {
		var d merkle.Digest
		if _, err := fmt.Sscan(s, &d); fault.ErrNotTransactionDigest != err {
			t.Errorf("scan: %q  error: %v", s, err)
		}
	}
}

func TestNewDigest(t *testing.T) {
	d := merkle.NewDigest(nil)

	// sha3-256 of empty input as produced, which prints reversed
	littleEndian := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	bigEndian := "4a43f8804b0ad882fa493be44dff80f562d661a05647c15166d71ebff8c6ffa7"

	buffer, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %s", err)
	}
	if littleEndian != string(buffer) {
		t.Errorf("text: %s  expected: %s", buffer, littleEndian)
	}
	if bigEndian != d.String() {
		t.Errorf("string: %s  expected: %s", d, bigEndian)
	}
}

func TestJSON(t *testing.T) {
	d := merkle.NewDigest([]byte("alicebob"))

	buffer, err := json.Marshal(d)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var decoded merkle.Digest
	if err := json.Unmarshal(buffer, &decoded); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if d != decoded {
		t.Errorf("decoded: %#v  expected: %#v", decoded, d)
	}

	if err := decoded.UnmarshalText([]byte("abcd")); fault.ErrNotTransactionDigest != err {
		t.Errorf("short text: error: %v", err)
	}
	bad := make([]byte, 64)
	for i := range bad {
		bad[i] = 'x'
	}
	if err := decoded.UnmarshalText(bad); fault.ErrNotTransactionDigest != err {
		t.Errorf("bad hex: error: %v", err)
	}
}

func TestDigestFromBytes(t *testing.T) {
	expected := merkle.NewDigest([]byte("x"))

	var d merkle.Digest
	if err := merkle.DigestFromBytes(&d, expected[:]); nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if expected != d {
		t.Errorf("digest: %#v  expected: %#v", d, expected)
	}
	if err := merkle.DigestFromBytes(&d, expected[1:]); fault.ErrNotTransactionDigest != err {
		t.Errorf("short buffer: error: %v", err)
	}
}
