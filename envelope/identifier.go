// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/bitmark-inc/txsign/merkle"
)

// TxId - SHA3-256 digest of the packed envelope
func (st *SignedTransaction) TxId() (merkle.Digest, error) {
	packed, err := st.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return packed.MakeLink(), nil
}

// CID - content identifier of the packed envelope: CIDv1, raw codec,
// SHA3-256 multihash
func (st *SignedTransaction) CID() (cid.Cid, error) {
	packed, err := st.Pack()
	if nil != err {
		return cid.Undef, err
	}
	return packed.CID()
}

// MakeLink - create a link (TxId) from a packed envelope
func (packed Packed) MakeLink() merkle.Digest {
	return merkle.NewDigest(packed)
}

// CID - content identifier for already packed bytes
func (packed Packed) CID() (cid.Cid, error) {
	mh, err := multihash.Sum(packed, multihash.SHA3_256, -1)
	if nil != err {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
