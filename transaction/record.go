// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"

	"github.com/bitmark-inc/txsign/fault"
)

// Record - the signable pair of fields
//
// fields are only set by New or by decoding into a fresh value
type Record struct {
	input       string
	output      string
	initialised bool
}

// the JSON form of a record
type recordJSON struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// New - create a record, empty strings are valid
func New(input string, output string) *Record {
	return &Record{
		input:       input,
		output:      output,
		initialised: true,
	}
}

// Input - the input field
func (r *Record) Input() string {
	return r.input
}

// Output - the output field
func (r *Record) Output() string {
	return r.output
}

// Equal - true if both fields match
func (r *Record) Equal(other *Record) bool {
	if nil == r || nil == other {
		return r == other
	}
	return r.input == other.input && r.output == other.output
}

// String - for the fmt package
func (r *Record) String() string {
	return "{input: " + r.input + ", output: " + r.output + "}"
}

// MarshalJSON - convert a record to JSON
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Input:  r.input,
		Output: r.output,
	})
}

// UnmarshalJSON - decode JSON into a fresh record
func (r *Record) UnmarshalJSON(s []byte) error {
	if r.initialised {
		return fault.ErrAlreadyInitialised
	}
	var j recordJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}
	*r = Record{
		input:       j.Input,
		output:      j.Output,
		initialised: true,
	}
	return nil
}
