// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/arkecosystem/arkcrypto/transaction"
)

// IPFSBuilder - anchor an IPFS multihash
type IPFSBuilder struct {
	common[*IPFSBuilder]
}

// NewIPFS - ipfs, version 2 only
func NewIPFS(manager *transaction.Manager) *IPFSBuilder {
	b := &IPFSBuilder{}
	b.init(b, manager, transaction.IPFSType)
	b.data.Version = 2
	return b
}

// Hash - base58 multihash
func (b *IPFSBuilder) Hash(hash string) *IPFSBuilder {
	b.data.Asset = &transaction.IPFSAsset{Hash: hash}
	return b
}
