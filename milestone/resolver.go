// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package milestone

import (
	"sync"

	"github.com/arkecosystem/arkcrypto/fault"
)

// Resolver - tracks the active milestone as the height advances
//
// the pointer only moves forward; lookups at arbitrary heights go
// through At and leave it untouched
type Resolver struct {
	sync.RWMutex
	table  Table
	index  int
	height uint64
}

// NewResolver - start a resolver at height 1
func NewResolver(table Table) *Resolver {
	r := &Resolver{
		table: table,
	}
	r.advance(1)
	return r
}

// SetHeight - move the resolver to a new height
func (r *Resolver) SetHeight(height uint64) error {
	r.Lock()
	defer r.Unlock()

	if height < r.height {
		return fault.ErrHeightRewind
	}
	r.advance(height)
	return nil
}

// must hold the write lock or be called during construction
func (r *Resolver) advance(height uint64) {
	r.height = height
	for r.index+1 < len(r.table) && r.table[r.index+1].Height <= height {
		r.index += 1
	}
}

// Height - the current height
func (r *Resolver) Height() uint64 {
	r.RLock()
	defer r.RUnlock()
	return r.height
}

// Current - the milestone in force at the current height
func (r *Resolver) Current() Milestone {
	r.RLock()
	defer r.RUnlock()
	return r.table[r.index]
}

// At - the milestone in force at an arbitrary height
func (r *Resolver) At(height uint64) Milestone {
	return r.table.At(height)
}

// IsNew - true when a milestone starts exactly at the current height
func (r *Resolver) IsNew() bool {
	r.RLock()
	defer r.RUnlock()
	return r.table[r.index].Height == r.height
}

// Table - all merged milestones
func (r *Resolver) Table() Table {
	return r.table
}
