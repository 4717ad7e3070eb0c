// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/fault"
)

// FeeResolver - static fees of the milestone in force
type FeeResolver struct {
	context  *chain.Context
	registry *Registry
}

// NewFeeResolver - fees for the types known to a registry
func NewFeeResolver(context *chain.Context, registry *Registry) *FeeResolver {
	return &FeeResolver{
		context:  context,
		registry: registry,
	}
}

// Get - the static fee of a type at the current height
func (f *FeeResolver) Get(t *InternalType) (uint64, error) {
	return f.GetAt(t, f.context.Height())
}

// GetAt - the static fee of a type at any height
func (f *FeeResolver) GetAt(t *InternalType, height uint64) (uint64, error) {
	key, err := f.registry.Key(t)
	if nil != err {
		return 0, err
	}
	fee, ok := f.context.MilestoneAt(height).StaticFee(key)
	if !ok {
		return 0, fault.MissingFee(key)
	}
	return fee, nil
}

// ForTransaction - the static fee scaled for multi signature registration
//
// a registration pays the base fee once for itself and once per participant
func (f *FeeResolver) ForTransaction(data *Data) (uint64, error) {
	fee, err := f.Get(data.InternalType())
	if nil != err {
		return 0, err
	}
	if !data.IsCore() || MultiSignatureType != data.Type {
		return fee, nil
	}

	switch asset := data.Asset.(type) {
	case *MultiSignatureAsset:
		return fee * uint64(len(asset.PublicKeys)+1), nil
	case *LegacyMultiSignatureAsset:
		return fee * uint64(len(asset.Keysgroup)+1), nil
	default:
		return fee, nil
	}
}
