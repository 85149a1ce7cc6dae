// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scheme - signature algorithm backends
//
// a Scheme signs and verifies opaque messages with raw key bytes; the
// transaction codec only ever talks to this interface so a backend can
// be swapped without touching the encoding
//
// available backends:
//
//	ed25519        golang.org/x/crypto/ed25519 (the default)
//	circl-ed25519  github.com/cloudflare/circl/sign/ed25519
//	ed448          github.com/cloudflare/circl/sign/ed448
//	dilithium3     github.com/cloudflare/circl/sign/dilithium/mode3
//
// Sign reports unusable private keys as fault.KeyError values; Verify
// only ever answers true or false
package scheme
