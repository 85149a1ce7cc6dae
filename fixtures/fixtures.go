// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared key material and logger setup for tests
package fixtures

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txsign/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// key one is RFC 8032 section 7.1 test 1
const (
	Seed1      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	PublicKey1 = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"

	// signature of "alicebob" by key one
	AliceBobSignature = "dce241d1eae405b30ac49958c4fe6e4a21c554ff3d64d8e7c9704dd88bbbfd6f387c533ed5090d70e817d8b06a3a188a3d305545f096b7ffe0cc718c19fc030e"

	// signature of "\x05alice\x03bob" by key one
	AliceBobFramedSignature = "6ffc06f2f664c80c848f8cb9f0b9ab3cb5c42f7e1a2454ef5480773ce91b8bb90e7d69ad42500c1d20b9171d0a64203a16526d64b0e7684a816f18f16782590a"
)

// key two comes from a testnet v2 seed
const (
	Base58Seed2    = "9J877LVjhr3Xxd2nGzRVRVNUZpSKJF4TH"
	Base58Account2 = "f7nuKToBByL3jEcArZWoB9PJ8MVmGPjrYkW88v3Yw8p7G5Sxhy"
)

var (
	PrivateKey1 *account.PrivateKey
	Account1    *account.Account
	PrivateKey2 *account.PrivateKey
	Account2    *account.Account
)

func init() {
	privateKey := append(MustDecodeHex(Seed1), MustDecodeHex(PublicKey1)...)

	var err error
	PrivateKey1, err = account.NewED25519PrivateKey(privateKey, true)
	if nil != err {
		panic(err)
	}
	Account1 = PrivateKey1.Account()

	PrivateKey2, err = account.PrivateKeyFromBase58Seed(Base58Seed2)
	if nil != err {
		panic(err)
	}
	Account2 = PrivateKey2.Account()
}

// SetupTestLogger - start logging to a throwaway directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// MustDecodeHex - decode test data that is known to be valid hex
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
