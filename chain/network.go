// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/arkecosystem/arkcrypto/milestone"
)

// Bip32 - extended key version bytes
type Bip32 struct {
	Public  uint32 `gluamapper:"public" json:"public"`
	Private uint32 `gluamapper:"private" json:"private"`
}

// Client - presentation details of a network
type Client struct {
	Token    string `gluamapper:"token" json:"token"`
	Symbol   string `gluamapper:"symbol" json:"symbol"`
	Explorer string `gluamapper:"explorer" json:"explorer"`
}

// Network - static parameters identifying a network
type Network struct {
	Name          string `gluamapper:"name" json:"name"`
	MessagePrefix string `gluamapper:"messagePrefix" json:"messagePrefix"`
	Bip32         Bip32  `gluamapper:"bip32" json:"bip32"`
	PubKeyHash    uint8  `gluamapper:"pubKeyHash" json:"pubKeyHash"`
	NetHash       string `gluamapper:"nethash" json:"nethash"`
	WIF           uint8  `gluamapper:"wif" json:"wif"`
	Slip44        uint32 `gluamapper:"slip44" json:"slip44"`
	AIP20         uint32 `gluamapper:"aip20" json:"aip20"`
	Client        Client `gluamapper:"client" json:"client"`
}

// Exceptions - blocks and transactions that bypass verification on a network
type Exceptions struct {
	Blocks                []string          `gluamapper:"blocks" json:"blocks"`
	Transactions          []string          `gluamapper:"transactions" json:"transactions"`
	TransactionIDFixTable map[string]string `gluamapper:"transactionIdFixTable" json:"transactionIdFixTable"`
}

// Config - everything needed to build a context
type Config struct {
	Network    Network                `gluamapper:"network" json:"network"`
	Milestones []milestone.Definition `gluamapper:"milestones" json:"milestones"`
	Exceptions Exceptions             `gluamapper:"exceptions" json:"exceptions"`
}
