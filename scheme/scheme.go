// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheme

import (
	"io"
	"sort"

	"github.com/bitmark-inc/txsign/fault"
)

// Scheme - a digital signature algorithm over raw key bytes
type Scheme interface {
	Name() string
	Sign(message []byte, privateKey []byte) ([]byte, error)
	Verify(message []byte, publicKey []byte, signature []byte) bool
}

// KeyGenerator - implemented by backends able to create key pairs
type KeyGenerator interface {
	GenerateKey(entropy io.Reader) (publicKey []byte, privateKey []byte, err error)
}

// Default - the scheme used when none is configured
var Default Scheme = Ed25519

// all registered backends by name
var schemes = map[string]Scheme{
	Ed25519.Name():      Ed25519,
	CirclEd25519.Name(): CirclEd25519,
	Ed448.Name():        Ed448,
	Dilithium3.Name():   Dilithium3,
}

// Lookup - find a backend by its configuration name
func Lookup(name string) (Scheme, error) {
	s, ok := schemes[name]
	if !ok {
		return nil, fault.ErrUnknownScheme
	}
	return s, nil
}

// Names - sorted list of registered backend names
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// backends whose keys are Ed25519 key pairs, the only key type an
// account can hold
var ed25519Schemes = map[string]bool{
	Ed25519.Name():      true,
	CirclEd25519.Name(): true,
}

// LookupEd25519 - find a backend that can sign and verify with
// account keys
func LookupEd25519(name string) (Scheme, error) {
	s, err := Lookup(name)
	if nil != err {
		return nil, err
	}
	if !ed25519Schemes[name] {
		return nil, fault.ErrIncompatibleScheme
	}
	return s, nil
}

// Ed25519Names - sorted list of backends usable with account keys
func Ed25519Names() []string {
	names := make([]string, 0, len(ed25519Schemes))
	for name := range ed25519Schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
