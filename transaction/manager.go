// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/arkecosystem/arkcrypto/chain"
)

// Manager - every transaction service of one network
//
// all members share the same context and registry
type Manager struct {
	Context  *chain.Context
	Registry *Registry
	Codec    *Codec
	Fees     *FeeResolver
	Signer   *Signer
	Verifier *Verifier
	Factory  *Factory
}

// NewManager - services over the core registry
func NewManager(context *chain.Context) *Manager {
	return NewManagerWithRegistry(context, NewRegistry())
}

// NewManagerWithRegistry - services over a registry holding extra types
func NewManagerWithRegistry(context *chain.Context, registry *Registry) *Manager {
	codec := NewCodec(context, registry)
	verifier := NewVerifier(context, registry, codec)
	return &Manager{
		Context:  context,
		Registry: registry,
		Codec:    codec,
		Fees:     NewFeeResolver(context, registry),
		Signer:   NewSigner(codec),
		Verifier: verifier,
		Factory:  NewFactory(context, registry, codec, verifier),
	}
}
