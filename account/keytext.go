// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/util"
)

// key layout shared by accounts and private keys:
//
//   Varint64(algorithm<<4 | flags) ++ key bytes [++ checksum]
//
// the checksum is the first four bytes of SHA3-256 over the preceding
// bytes and is only present in the Base58 text forms

// check the variant then the checksum, return the bytes without checksum
//
// the variant is checked first so that a public key supplied where a
// private key is expected (and vice versa) is reported as such
func stripChecksum(decoded []byte, public bool) ([]byte, error) {
	if _, _, _, err := splitKeyVariant(decoded, public); nil != err {
		return nil, err
	}

	checksumStart := len(decoded) - checksumLength
	_, keyVariantLength := util.FromVarint64(decoded)
	if checksumStart-keyVariantLength <= 0 {
		return nil, fault.ErrInvalidKeyLength
	}

	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return decoded[:checksumStart], nil
}

// decode the key variant: algorithm, network and remaining key bytes
func splitKeyVariant(buffer []byte, public bool) (uint64, bool, []byte, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	isPublic := 0 != keyVariant&publicKeyCode
	if 0 == keyVariantLength || public != isPublic {
		if public {
			return 0, false, nil, fault.ErrNotPublicKey
		}
		return 0, false, nil, fault.ErrNotPrivateKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if reserved == keyAlgorithm || keyAlgorithm >= algorithmLimit {
		return 0, false, nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode
	return keyAlgorithm, isTest, buffer[keyVariantLength:], nil
}

// append the checksum then encode
func toBase58WithChecksum(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// key variant byte for an algorithm
func keyVariant(algorithm int, public bool, test bool) byte {
	v := byte(algorithm << algorithmShift)
	if public {
		v |= publicKeyCode
	}
	if test {
		v |= testKeyCode
	}
	return v
}
