// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"
	"sync"
)

// TypeGroup - namespace of a transaction type code
type TypeGroup uint32

// type groups; anything other than core may register new types
const (
	TestGroup     = TypeGroup(0)
	CoreGroup     = TypeGroup(1)
	ReservedGroup = TypeGroup(1000) // first group available to plugins
)

// Type - type code within a group
type Type uint16

// enumerate the core transaction types
const (
	TransferType             = Type(iota) // value transfer
	SecondSignatureType      = Type(iota) // second signature registration
	DelegateRegistrationType = Type(iota) // delegate registration
	VoteType                 = Type(iota) // vote / unvote
	MultiSignatureType       = Type(iota) // multi signature registration
	IPFSType                 = Type(iota) // IPFS hash
	MultiPaymentType         = Type(iota) // many transfers in one
	DelegateResignationType  = Type(iota) // delegate resignation
	HTLCLockType             = Type(iota) // hash time lock
	HTLCClaimType            = Type(iota) // claim a lock with its secret
	HTLCRefundType           = Type(iota) // refund an expired lock
)

// InternalType - a (type, group) pair with identity semantics
//
// values are interned so pointer comparison is equality; build
// them only through InternalTypeFrom
type InternalType struct {
	typ   Type
	group TypeGroup
}

type internalKey struct {
	typ   Type
	group TypeGroup
}

// process wide intern table, entries are never removed
var interned = struct {
	sync.Mutex
	types map[internalKey]*InternalType
}{
	types: make(map[internalKey]*InternalType),
}

// InternalTypeFrom - the unique value for a (type, group) pair
func InternalTypeFrom(typ Type, group TypeGroup) *InternalType {
	interned.Lock()
	defer interned.Unlock()

	key := internalKey{typ: typ, group: group}
	if t, ok := interned.types[key]; ok {
		return t
	}
	t := &InternalType{typ: typ, group: group}
	interned.types[key] = t
	return t
}

// Type - the type code
func (t *InternalType) Type() Type {
	return t.typ
}

// Group - the type group
func (t *InternalType) Group() TypeGroup {
	return t.group
}

// String - "group-type" for logs
func (t *InternalType) String() string {
	return fmt.Sprintf("%d-%d", t.group, t.typ)
}
