// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"sync"

	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/milestone"
)

// Handler - the type specific part of the codec and schema
type Handler interface {
	// key of the static fee and of log messages
	Key() string
	// whether the vendor field is written for this type
	HasVendorField() bool
	// whether the type can be verified under a milestone
	Enabled(m milestone.Milestone) bool
	// asset section of the wire format
	SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error
	DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error
	// structural checks beyond the common fields
	Validate(data *Data, network uint8) error
}

// BaseHandler - defaults for Handler implementations to embed
type BaseHandler struct {
	Name        string
	VendorField bool
}

// Key - static fee key
func (h BaseHandler) Key() string {
	return h.Name
}

// HasVendorField - vendor field is carried
func (h BaseHandler) HasVendorField() bool {
	return h.VendorField
}

// Enabled - available under every milestone
func (h BaseHandler) Enabled(milestone.Milestone) bool {
	return true
}

// Registry - handlers keyed by interned type then version
type Registry struct {
	sync.RWMutex
	handlers map[*InternalType]map[uint8]Handler
	keys     map[string]*InternalType
}

// NewRegistry - a registry holding every core type
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[*InternalType]map[uint8]Handler),
		keys:     make(map[string]*InternalType),
	}
	for _, c := range coreHandlers() {
		r.add(InternalTypeFrom(c.typ, CoreGroup), c.handler, c.versions...)
	}
	return r
}

// Register - add a version 2 handler outside the core group
func (r *Registry) Register(group TypeGroup, typ Type, handler Handler) error {
	if CoreGroup == group {
		return fault.ErrCoreTransactionType
	}

	r.Lock()
	defer r.Unlock()

	t := InternalTypeFrom(typ, group)
	if _, ok := r.handlers[t]; ok {
		return fault.ErrDuplicateTransactionType
	}
	if _, ok := r.keys[handler.Key()]; ok {
		return fault.ErrDuplicateTransactionType
	}
	r.add(t, handler, 2)
	return nil
}

// Deregister - remove a type added with Register
func (r *Registry) Deregister(group TypeGroup, typ Type) error {
	if CoreGroup == group {
		return fault.ErrCoreTransactionType
	}

	r.Lock()
	defer r.Unlock()

	t := InternalTypeFrom(typ, group)
	versions, ok := r.handlers[t]
	if !ok {
		return fault.ErrUnknownTransactionType
	}
	for _, h := range versions {
		delete(r.keys, h.Key())
	}
	delete(r.handlers, t)
	return nil
}

// must hold the write lock or be called during construction
func (r *Registry) add(t *InternalType, handler Handler, versions ...uint8) {
	v, ok := r.handlers[t]
	if !ok {
		v = make(map[uint8]Handler)
		r.handlers[t] = v
	}
	for _, version := range versions {
		v[version] = handler
	}
	r.keys[handler.Key()] = t
}

// Handler - the handler for a type at a transaction version
func (r *Registry) Handler(t *InternalType, version uint8) (Handler, error) {
	r.RLock()
	defer r.RUnlock()

	h, ok := r.handlers[t][version]
	if !ok {
		return nil, fault.ErrUnknownTransactionType
	}
	return h, nil
}

// Key - static fee key of a type whatever its version
func (r *Registry) Key(t *InternalType) (string, error) {
	r.RLock()
	defer r.RUnlock()

	for _, h := range r.handlers[t] {
		return h.Key(), nil
	}
	return "", fault.ErrUnknownTransactionType
}

// TypeFromKey - reverse lookup of Key
func (r *Registry) TypeFromKey(key string) (*InternalType, error) {
	r.RLock()
	defer r.RUnlock()

	t, ok := r.keys[key]
	if !ok {
		return nil, fault.ErrUnknownTransactionType
	}
	return t, nil
}
