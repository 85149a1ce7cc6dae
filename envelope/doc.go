// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package envelope - container for a record and its signature
//
// binary layout of a packed envelope:
//
//	Varint64(tag = 1)
//	Varint64(encoding)
//	Varint64(length) input
//	Varint64(length) output
//	Varint64(length) signer account bytes
//	Varint64(length) signature
//
// the envelope is never what is signed, the signature covers only the
// record encoded with the stated encoding
package envelope
