// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all preset chains
const (
	Mainnet = "mainnet"
	Devnet  = "devnet"
	Testnet = "testnet"
	Unitnet = "unitnet"
)

// Valid - validate a preset chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Devnet, Testnet, Unitnet:
		return true
	default:
		return false
	}
}

// Names - all preset chain names
func Names() []string {
	return []string{Mainnet, Devnet, Testnet, Unitnet}
}
