// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/txsign/account"
	"github.com/bitmark-inc/txsign/fault"
)

// signerCache - remembers signer accounts that were already accepted
// for this chain, keyed by the packed account bytes
type signerCache struct {
	testnet bool
	cache   *cache.Cache
}

type cachedSigner struct {
	text string
	err  error
}

func newSignerCache(testnet bool, expiration time.Duration) *signerCache {
	return &signerCache{
		testnet: testnet,
		cache:   cache.New(expiration, 2*expiration),
	}
}

// Check - Base58 text of the signer, or an error if the account cannot
// sign on this chain
func (c *signerCache) Check(signer *account.Account) (string, error) {
	if nil == signer || nil == signer.AccountInterface {
		return "", fault.ErrMissingKey
	}

	key := string(signer.Bytes())
	if obj, found := c.cache.Get(key); found {
		data, ok := obj.(cachedSigner)
		if !ok {
			fault.Panicf("signer cache holds: %T", obj)
		}
		return data.text, data.err
	}

	data := cachedSigner{
		text: signer.String(),
	}
	if c.testnet != signer.IsTesting() {
		data.err = fault.ErrKeyNetworkMismatch
	}

	c.cache.SetDefault(key, data)
	return data.text, data.err
}

// Count - number of cached signers
func (c *signerCache) Count() int {
	return c.cache.ItemCount()
}
