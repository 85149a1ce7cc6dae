// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/util"
)

// seed layout:
//
//	v1: 5a fe 01 ++ network(1) ++ secret(32) ++ checksum(4)
//	v2: 5a fe 02 ++ secret(17)                ++ checksum(4)
//
// v2 hides the network flag in the top bits of secret bytes 0..3 and 15
var (
	seedHeaderV1 = []byte{0x5a, 0xfe, 0x01}
	seedHeaderV2 = []byte{0x5a, 0xfe, 0x02}
)

// v1 derives the ed25519 seed by sealing a fixed index with the secret
var (
	seedNonce     = [24]byte{}
	authSeedIndex = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedHeaderLength   = 3
	seedPrefixLength   = 1
	seedChecksumLength = 4

	secretKeyV1Length        = 32
	secretKeyV2Length        = 17
	secretKeyV2EntropyLength = 16

	seedV1Length = seedHeaderLength + seedPrefixLength + secretKeyV1Length + seedChecksumLength
	seedV2Length = seedHeaderLength + secretKeyV2Length + seedChecksumLength

	v2HashRounds = 4
)

// PrivateKeyFromBase58Seed - derive the private key from a Base58 seed
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	ed25519Seed, testnet, err := parseBase58Seed(seedBase58Encoded)
	if nil != err {
		return nil, err
	}
	return NewED25519PrivateKey(ed25519.NewKeyFromSeed(ed25519Seed), testnet)
}

// return the 32 byte ed25519 seed and the network flag
func parseBase58Seed(seedBase58Encoded string) ([]byte, bool, error) {
	seed := util.FromBase58(seedBase58Encoded)
	seedLength := len(seed)
	if seedV1Length != seedLength && seedV2Length != seedLength {
		return nil, false, fault.ErrInvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, false, fault.ErrChecksumMismatch
	}

	header := seed[:seedHeaderLength]
	switch {
	case bytes.Equal(seedHeaderV1, header) && seedV1Length == seedLength:
		secretStart := seedHeaderLength + seedPrefixLength
		var sk [secretKeyV1Length]byte
		copy(sk[:], seed[secretStart:checksumStart])
		testnet := 0x01 == seed[seedHeaderLength]
		return secretbox.Seal([]byte{}, authSeedIndex[:], &seedNonce, &sk), testnet, nil

	case bytes.Equal(seedHeaderV2, header) && seedV2Length == seedLength:
		sk := seed[seedHeaderLength:checksumStart]
		if 0 != sk[16]&0x0f {
			return nil, false, fault.ErrInvalidSeedLength
		}

		mode := sk[0]&0x80 | sk[1]&0x40 | sk[2]&0x20 | sk[3]&0x10
		testnet := mode == sk[15]&0xf0^0xf0

		hash := sha3.NewShake256()
		for i := 0; i < v2HashRounds; i += 1 {
			hash.Write(sk)
		}
		ed25519Seed := make([]byte, ed25519.SeedSize)
		if _, err := io.ReadFull(hash, ed25519Seed); nil != err {
			return nil, false, fault.ErrCannotDecodeSeed
		}
		return ed25519Seed, testnet, nil

	default:
		return nil, false, fault.ErrInvalidSeedHeader
	}
}

// NewBase58EncodedSeedV1 - generate base58 seed v1
func NewBase58EncodedSeedV1(testnet bool) (string, error) {
	sk := make([]byte, secretKeyV1Length)
	if _, err := io.ReadFull(rand.Reader, sk); nil != err {
		return "", err
	}

	network := byte(0x00)
	if testnet {
		network = 0x01
	}
	seed := make([]byte, 0, seedV1Length)
	seed = append(seed, seedHeaderV1...)
	seed = append(seed, network)
	seed = append(seed, sk...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}

// NewBase58EncodedSeedV2 - generate base58 seed v2
func NewBase58EncodedSeedV2(testnet bool) (string, error) {
	return newBase58EncodedSeedV2(rand.Reader, testnet)
}

func newBase58EncodedSeedV2(entropy io.Reader, testnet bool) (string, error) {

	// 128 bits of entropy, extended to 132 bits
	sk := make([]byte, secretKeyV2EntropyLength, secretKeyV2Length)
	if _, err := io.ReadFull(entropy, sk); nil != err {
		return "", err
	}
	sk = append(sk, sk[15]&0xf0)

	// network flag
	mode := sk[0]&0x80 | sk[1]&0x40 | sk[2]&0x20 | sk[3]&0x10
	if testnet {
		mode = mode ^ 0xf0
	}
	sk[15] = mode | sk[15]&0x0f

	seed := make([]byte, 0, seedV2Length)
	seed = append(seed, seedHeaderV2...)
	seed = append(seed, sk...)
	digest := sha3.Sum256(seed)
	seed = append(seed, digest[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}
