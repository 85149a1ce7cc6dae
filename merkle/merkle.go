// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute the merkle tree from a set of transaction ids
//
// structure is:
//  1. N * transaction digests
//  2. level 1..m digests
//  3. merkle root digest
//
// an odd digest at the end of a level is paired with itself
func FullMerkleTree(txIds []Digest) []Digest {

	// compute length of ids + all tree levels including root
	idCount := len(txIds)

	totalLength := 1 // all ids + space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	// add initial ids
	tree := make([]Digest, totalLength)
	copy(tree[:], txIds)

	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			tree[n] = NewDigest(append(tree[j][:], tree[k][:]...))
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the last digest of the full tree
//
// a single id is its own root; no ids give the zero digest
func Root(txIds []Digest) Digest {
	tree := FullMerkleTree(txIds)
	return tree[len(tree)-1]
}
