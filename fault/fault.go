// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
	"strings"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConfigurationError GenericError
type ExistsError GenericError
type FormatError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type SchemaError GenericError
type SignatureError GenericError
type VersionError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressChecksum             = FormatError("address checksum mismatch")
	ErrAddressLength               = FormatError("address has incorrect length")
	ErrAlreadyInitialised          = InvalidError("already initialised")
	ErrConfigurationNotTable       = ConfigurationError("configuration must return a table")
	ErrCoreTransactionType         = ExistsError("core transaction types cannot be changed")
	ErrDuplicateParticipant        = SignatureError("duplicate participant in multi signature")
	ErrDuplicateTransactionType    = ExistsError("transaction type is already registered")
	ErrHeightRewind                = InvalidError("height cannot move backwards")
	ErrInvalidIPFSHash             = FormatError("invalid ipfs hash")
	ErrInvalidLockField            = FormatError("invalid hash time lock field")
	ErrInvalidMilestoneHeight      = ConfigurationError("milestone heights must be strictly increasing")
	ErrInvalidNetworkPreset        = NotFoundError("invalid network preset")
	ErrInvalidPrivateKey           = InvalidError("invalid private key")
	ErrInvalidPublicKey            = InvalidError("invalid public key")
	ErrInvalidSignature            = FormatError("invalid signature")
	ErrInvalidWIF                  = FormatError("invalid wif")
	ErrMaximumPaymentCountExceeded = InvalidError("maximum payment count exceeded")
	ErrMissingAsset                = SchemaError("transaction asset is missing")
	ErrMissingMilestones           = ConfigurationError("no milestones configured")
	ErrMissingTransactionSignature = SignatureError("transaction signature is missing")
	ErrMultiSignatureMinimum       = InvalidError("multi signature minimum out of range")
	ErrMultiSignatureIndex         = SignatureError("multi signature index out of range")
	ErrNetworkWIFMismatch          = InvalidError("wif does not belong to this network")
	ErrNotTransactionPack          = FormatError("not transaction pack")
	ErrPublicKeyAggregation        = InvalidError("public key aggregation produced the point at infinity")
	ErrSignatureBufferNotExhausted = FormatError("signature buffer not exhausted")
	ErrSignatureMalformed          = FormatError("signature section is malformed")
	ErrTooManyParticipants         = InvalidError("too many multi signature participants")
	ErrUnknownTransactionType      = NotFoundError("transaction type is not registered")
	ErrVendorFieldTooLong          = FormatError("vendor field is too long")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e ConfigurationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e FormatError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e SchemaError) Error() string        { return string(e) }
func (e SignatureError) Error() string     { return string(e) }
func (e VersionError) Error() string       { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrConfiguration(e error) bool { var t ConfigurationError; return errors.As(e, &t) }
func IsErrExists(e error) bool        { var t ExistsError; return errors.As(e, &t) }
func IsErrFormat(e error) bool        { var t FormatError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool       { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool      { var t NotFoundError; return errors.As(e, &t) }
func IsErrSchema(e error) bool        { var t SchemaError; return errors.As(e, &t) }
func IsErrSignature(e error) bool     { var t SignatureError; return errors.As(e, &t) }
func IsErrVersion(e error) bool       { var t VersionError; return errors.As(e, &t) }

// IsFault - true when an error belongs to any class above
func IsFault(e error) bool {
	var t GenericError
	return errors.As(e, &t) || IsErrConfiguration(e) || IsErrExists(e) ||
		IsErrFormat(e) || IsErrInvalid(e) || IsErrNotFound(e) ||
		IsErrSchema(e) || IsErrSignature(e) || IsErrVersion(e)
}

// UnsupportedVersion - a transaction version not enabled at the current milestone
func UnsupportedVersion(version uint8) error {
	return VersionError(fmt.Sprintf("transaction version %d is not supported", version))
}

const invalidBytesPrefix = "invalid transaction bytes: "

// InvalidTransactionBytes - normalised error for any undecodable transaction
func InvalidTransactionBytes(message string) error {
	return FormatError(invalidBytesPrefix + strings.TrimPrefix(message, invalidBytesPrefix))
}

// InvalidMilestone - delegate count changed in the middle of a round
func InvalidMilestone(height uint64) error {
	return ConfigurationError(fmt.Sprintf("bad milestone at height: %d, the number of delegates can only be changed at the beginning of a new round", height))
}

// MissingFee - no static fee configured for a transaction key
func MissingFee(key string) error {
	return NotFoundError(fmt.Sprintf("no static fee configured for: %s", key))
}

// Schema - a transaction failed structural validation
func Schema(format string, arguments ...interface{}) error {
	return SchemaError(fmt.Sprintf(format, arguments...))
}
