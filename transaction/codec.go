// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// SerializeOptions - which signatures to leave out
type SerializeOptions struct {
	ExcludeSignature       bool
	ExcludeSecondSignature bool
	ExcludeMultiSignature  bool
}

// DeserializeOptions - version gating
type DeserializeOptions struct {
	// accept a version the current milestone does not enable
	AcceptLegacyVersion bool
}

// Codec - wire format and hashing for one network
type Codec struct {
	context  *chain.Context
	registry *Registry
}

// NewCodec - codec for the types of a registry
func NewCodec(context *chain.Context, registry *Registry) *Codec {
	return &Codec{
		context:  context,
		registry: registry,
	}
}

func (c *Codec) handler(data *Data) (Handler, error) {
	if 1 != data.Version && 2 != data.Version {
		return nil, fault.UnsupportedVersion(data.Version)
	}
	return c.registry.Handler(data.InternalType(), data.Version)
}

// Bytes - the preimage of signature and id hashes
//
// version 1 uses the legacy layout, version 2 the wire format
func (c *Codec) Bytes(data *Data, options SerializeOptions) ([]byte, error) {
	if 1 == data.Version {
		return c.legacyBytes(data, options)
	}
	return c.Serialize(data, options)
}

// Hash - SHA-256 of Bytes
func (c *Codec) Hash(data *Data, options SerializeOptions) ([]byte, error) {
	b, err := c.Bytes(data, options)
	if nil != err {
		return nil, err
	}
	return crypto.Sha256(b), nil
}

// ID - hex id of a fully signed transaction
func (c *Codec) ID(data *Data) (string, error) {
	hash, err := c.Hash(data, SerializeOptions{})
	if nil != err {
		return "", err
	}
	return c.context.FixID(hex.EncodeToString(hash)), nil
}
