// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type KeyError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey = InvalidError("cannot decode private key")
	ErrCannotDecodeSeed       = InvalidError("cannot decode seed")
	ErrCannotDecodeSignature  = InvalidError("cannot decode signature")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrConfigurationNotFound  = NotFoundError("configuration file not found")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrFieldTooLong           = LengthError("field too long")
	ErrIncompatibleScheme     = KeyError("signature scheme does not use account keys")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidKeyLength       = KeyError("invalid key length")
	ErrInvalidKeyType         = KeyError("invalid key type")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidSeedHeader      = InvalidError("invalid seed header")
	ErrInvalidSeedLength      = LengthError("invalid seed length")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyNetworkMismatch     = KeyError("key network mismatch")
	ErrMissingKey             = KeyError("missing key")
	ErrMismatchedPublicKey    = KeyError("private key does not match its public key")
	ErrMissingRecord          = RecordError("missing record")
	ErrNotCanonical           = RecordError("envelope is not in canonical form")
	ErrNotPrivateKey          = KeyError("not a private key")
	ErrNotPublicKey           = KeyError("not a public key")
	ErrNotSignedTransaction   = RecordError("not a signed transaction")
	ErrNotTransactionDigest   = InvalidError("not a transaction digest")
	ErrSignatureTooLong       = LengthError("signature too long")
	ErrSignatureVerification  = ProcessError("signature verification failed")
	ErrTrailingData           = RecordError("unexpected trailing data")
	ErrTruncatedEnvelope      = LengthError("truncated envelope")
	ErrUnknownEncoding        = RecordError("unknown encoding")
	ErrUnknownScheme          = NotFoundError("unknown signature scheme")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e KeyError) Error() string      { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrKey(e error) bool      { _, ok := e.(KeyError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
