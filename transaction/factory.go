// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"errors"

	"github.com/bitmark-inc/logger"

	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/fault"
)

// Factory - builds Transaction values from bytes or data
type Factory struct {
	context  *chain.Context
	registry *Registry
	codec    *Codec
	verifier *Verifier
	log      *logger.L
}

// NewFactory - factory for a network
func NewFactory(context *chain.Context, registry *Registry, codec *Codec, verifier *Verifier) *Factory {
	return &Factory{
		context:  context,
		registry: registry,
		codec:    codec,
		verifier: verifier,
		log:      logger.New("factory"),
	}
}

// FromHex - as FromBytes for hex input, strict
func (f *Factory) FromHex(s string) (*Transaction, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidTransactionBytes("not hex")
	}
	return f.FromBytes(b, true)
}

// FromBytes - decode, identify, validate and verify wire bytes
//
// failures other than version, schema and duplicate participant
// errors are reported as invalid transaction bytes
func (f *Factory) FromBytes(b []byte, strict bool) (*Transaction, error) {
	t, err := f.fromBytes(b, strict)
	if nil != err {
		f.log.Debugf("rejected: %d bytes  error: %s", len(b), err)
		return nil, normalise(err)
	}
	return t, nil
}

func (f *Factory) fromBytes(b []byte, strict bool) (*Transaction, error) {
	data, err := f.codec.Deserialize(b, DeserializeOptions{})
	if nil != err {
		return nil, err
	}
	handler, err := f.registry.Handler(data.InternalType(), data.Version)
	if nil != err {
		return nil, err
	}

	data.ID, err = f.codec.ID(data)
	if nil != err {
		return nil, err
	}

	if err := f.codec.Validate(data, strict); nil != err && !f.context.IsException(data.ID) {
		return nil, err
	}

	verified, err := f.verifier.Verify(data)
	if nil != err {
		return nil, err
	}

	return &Transaction{
		data:       data,
		serialized: append([]byte(nil), b...),
		verified:   verified,
		handler:    handler,
	}, nil
}

// FromBytesUnsafe - trusted input: any version, no schema, marked verified
//
// an empty id is computed from the data
func (f *Factory) FromBytesUnsafe(b []byte, id string) (*Transaction, error) {
	data, err := f.codec.Deserialize(b, DeserializeOptions{AcceptLegacyVersion: true})
	if nil != err {
		return nil, normalise(err)
	}
	handler, err := f.registry.Handler(data.InternalType(), data.Version)
	if nil != err {
		return nil, normalise(err)
	}

	if "" == id {
		id, err = f.codec.ID(data)
		if nil != err {
			return nil, normalise(err)
		}
	}
	data.ID = id

	return &Transaction{
		data:       data,
		serialized: append([]byte(nil), b...),
		verified:   true,
		handler:    handler,
	}, nil
}

// FromData - validate data, serialize it and build through FromBytes
func (f *Factory) FromData(data *Data, strict bool) (*Transaction, error) {
	if err := f.codec.Validate(data, strict); nil != err && !f.context.IsException(data.ID) {
		return nil, err
	}

	d := data.Clone()
	if 1 == d.Version {
		applyV1Compatibility(d)
	}

	b, err := f.codec.Serialize(d, SerializeOptions{})
	if nil != err {
		return nil, err
	}
	return f.FromBytes(b, strict)
}

// keep only the error classes callers act on
func normalise(err error) error {
	if fault.IsErrVersion(err) || fault.IsErrSchema(err) || errors.Is(err, fault.ErrDuplicateParticipant) {
		return err
	}
	return fault.InvalidTransactionBytes(err.Error())
}
