// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/txsign/envelope"
	"github.com/bitmark-inc/txsign/fault"
	"github.com/bitmark-inc/txsign/merkle"
	"github.com/bitmark-inc/txsign/scheme"
	"github.com/bitmark-inc/txsign/transaction"
)

// local errors
var (
	ErrEncodingNotAllowed = fault.InvalidError("envelope encoding not allowed")
	ErrEmptyFile          = fault.LengthError("file is empty")
)

// one line of output per file
type result struct {
	File     string `json:"file"`
	Valid    bool   `json:"valid"`
	TxId     string `json:"txId,omitempty"`
	Signer   string `json:"signer,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Input    string `json:"input,omitempty"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`

	txId merkle.Digest
}

// summary line
type summary struct {
	Files      int           `json:"files"`
	Valid      int           `json:"valid"`
	Invalid    int           `json:"invalid"`
	Signers    int           `json:"signers"`
	MerkleRoot merkle.Digest `json:"merkleRoot"`
}

type verifier struct {
	log      *logger.L
	scheme   scheme.Scheme
	encoding transaction.Encoding // NullEncoding accepts any
	signers  *signerCache
	limiter  *rate.Limiter // shared by all workers
}

type job struct {
	index int
	file  string
}

// Run - verify all files using a fixed number of workers
//
// results are returned in the same order as the files
func (v *verifier) Run(files []string, workers int) []result {

	if workers < 1 {
		workers = 1
	}

	results := make([]result, len(files))
	queue := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range queue {
				if err := v.limiter.Wait(context.Background()); nil != err {
					v.log.Warnf("worker: %d  rate limit error: %s", worker, err)
				}
				v.log.Debugf("worker: %d  file: %q", worker, j.file)
				results[j.index] = v.verifyFile(j.file)
			}
		}(i)
	}

	for i, f := range files {
		queue <- job{index: i, file: f}
	}
	close(queue)
	wg.Wait()

	return results
}

// Summarise - counts and merkle root of the valid transaction ids in file order
func (v *verifier) Summarise(results []result) summary {
	s := summary{
		Files:   len(results),
		Signers: v.signers.Count(),
	}
	txIds := make([]merkle.Digest, 0, len(results))
	for _, r := range results {
		if r.Valid {
			s.Valid += 1
			txIds = append(txIds, r.txId)
		} else {
			s.Invalid += 1
		}
	}
	s.MerkleRoot = merkle.Root(txIds)
	return s
}

func (v *verifier) verifyFile(file string) result {
	r := result{
		File: file,
	}

	data, err := ioutil.ReadFile(file)
	if nil != err {
		v.log.Warnf("file: %q  read error: %s", file, err)
		r.Error = err.Error()
		return r
	}

	err = v.verify(decodePacked(data), &r)
	if nil != err {
		v.log.Infof("file: %q  rejected: %s", file, err)
		r.Error = err.Error()
		return r
	}

	r.Valid = true
	v.log.Debugf("file: %q  txId: %s", file, r.TxId)
	return r
}

// fill in the result, or return the reason the envelope is invalid
func (v *verifier) verify(packed envelope.Packed, r *result) error {
	if 0 == len(packed) {
		return ErrEmptyFile
	}

	st, err := packed.Unpack()
	if nil != err {
		return err
	}

	r.txId = packed.MakeLink()
	r.TxId = r.txId.String()
	r.Encoding = st.Encoding.String()
	r.Input = st.Record.Input()
	r.Output = st.Record.Output()

	r.Signer, err = v.signers.Check(st.Signer)
	if nil != err {
		return err
	}

	if transaction.NullEncoding != v.encoding && v.encoding != st.Encoding {
		return ErrEncodingNotAllowed
	}

	return st.Check(v.scheme)
}

// hex text (surrounding white space ignored) or raw packed bytes
func decodePacked(data []byte) envelope.Packed {
	text := bytes.TrimSpace(data)
	if 0 != len(text) {
		packed := make([]byte, hex.DecodedLen(len(text)))
		if _, err := hex.Decode(packed, text); nil == err {
			return packed
		}
	}
	return data
}
