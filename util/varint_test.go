// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/txsign/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestAppendVarint64(t *testing.T) {
	prefix := []byte("abc")
	for i, item := range varint64Tests {
		buffer := append([]byte{}, prefix...)
		result := util.AppendVarint64(buffer, item.value)
		expected := append(append([]byte{}, prefix...), item.encoded...)
		if !bytes.Equal(result, expected) {
			t.Errorf("%d: AppendVarint64(%x) -> %x  expected: %x", i, item.value, result, expected)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		result, count := util.FromVarint64(item.encoded)
		if result != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %d  expected: %d", i, item.encoded, result, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) count: %d  expected: %d", i, item.encoded, count, len(item.encoded))
		}

		// trailing bytes must not be consumed
		b := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		result, count = util.FromVarint64(b)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, result, count, item.value, len(item.encoded))
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	tests := []struct {
		encoded []byte
		maximum int
		value   int
		count   int
	}{
		{[]byte{0x00}, 10, 0, 1},
		{[]byte{0x0a}, 10, 10, 1},
		{[]byte{0x0b}, 10, 0, 0},
		{[]byte{0x80, 0x01}, 1024, 128, 2},
		{[]byte{0x80}, 1024, 0, 0},
		{[]byte{0x01}, -1, 0, 0},
	}
	for i, item := range tests {
		value, count := util.ClippedVarint64(item.encoded, item.maximum)
		if value != item.value || count != item.count {
			t.Errorf("%d: ClippedVarint64(%x, %d) -> %d, %d  expected: %d, %d", i, item.encoded, item.maximum, value, count, item.value, item.count)
		}
	}
}
