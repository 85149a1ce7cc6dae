// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - record encoding and signatures
//
// a record is the pair (input, output) of opaque strings; signing
// binds its canonical encoding to a private key and verification
// checks that binding with the matching account
//
// encodings:
//
//	Concatenated    bytes(input) ++ bytes(output)       (default)
//	LengthPrefixed  Varint64(len(input)) ++ input ++
//	                Varint64(len(output)) ++ output     (opt-in)
//
// KNOWN WEAKNESS: the Concatenated encoding has no delimiter, so all
// records whose fields concatenate to the same bytes share one
// signature, e.g. {"alice", "bob"} and {"alic", "ebob"}.  This is kept
// for compatibility with existing signatures; LengthPrefixed must be
// chosen explicitly and is recorded in any envelope signed with it.
//
// errors from Sign are key problems (fault.IsErrKey) or a missing
// record (fault.IsErrRecord); Verify never returns an error, only
// whether the signature is valid
package transaction
