// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/transaction"
)

// SecondSignatureBuilder - register a second public key
type SecondSignatureBuilder struct {
	common[*SecondSignatureBuilder]
}

// NewSecondSignature - second signature registration
func NewSecondSignature(manager *transaction.Manager) *SecondSignatureBuilder {
	b := &SecondSignatureBuilder{}
	b.init(b, manager, transaction.SecondSignatureType)
	return b
}

// SignatureAsset - the key of the second passphrase
func (b *SecondSignatureBuilder) SignatureAsset(secondPassphrase string) *SecondSignatureBuilder {
	b.data.Asset = &transaction.SecondSignatureAsset{
		PublicKey: account.PublicKeyFromPassphrase(secondPassphrase),
	}
	return b
}

// DelegateRegistrationBuilder - register a delegate name
type DelegateRegistrationBuilder struct {
	common[*DelegateRegistrationBuilder]
}

// NewDelegateRegistration - delegate registration
func NewDelegateRegistration(manager *transaction.Manager) *DelegateRegistrationBuilder {
	b := &DelegateRegistrationBuilder{}
	b.init(b, manager, transaction.DelegateRegistrationType)
	return b
}

// Username - delegate name
func (b *DelegateRegistrationBuilder) Username(username string) *DelegateRegistrationBuilder {
	b.data.Asset = &transaction.DelegateAsset{Username: username}
	return b
}

// DelegateResignationBuilder - resign as a delegate
type DelegateResignationBuilder struct {
	common[*DelegateResignationBuilder]
}

// NewDelegateResignation - delegate resignation, version 2 only
func NewDelegateResignation(manager *transaction.Manager) *DelegateResignationBuilder {
	b := &DelegateResignationBuilder{}
	b.init(b, manager, transaction.DelegateResignationType)
	b.data.Version = 2
	return b
}

// VoteBuilder - vote for or unvote delegates
//
// signing sets the recipient to the address of the sender
type VoteBuilder struct {
	common[*VoteBuilder]
}

// NewVote - vote
func NewVote(manager *transaction.Manager) *VoteBuilder {
	b := &VoteBuilder{}
	b.init(b, manager, transaction.VoteType)
	return b
}

// Votes - "+" or "-" followed by a delegate public key
func (b *VoteBuilder) Votes(votes ...string) *VoteBuilder {
	b.data.Asset = &transaction.VoteAsset{Votes: append([]string(nil), votes...)}
	return b
}
