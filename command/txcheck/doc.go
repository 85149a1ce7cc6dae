// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Verify a batch of packed transaction envelopes
//
// each file holds one packed envelope, either raw bytes or hex text.
// one JSON line is printed per file followed by a summary line holding
// the merkle root of the valid transaction ids
//
//	txcheck [-v] --config-file=txcheck.conf FILE...
//
// exit status is 1 if any envelope fails to verify
package main
