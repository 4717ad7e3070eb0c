// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/pkg/errors"

	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/milestone"
)

// networkFile - a network described in Lua
//
// when preset is set the named network is loaded first and any
// milestones or exceptions given in the file are appended to it
type networkFile struct {
	Preset     string                 `gluamapper:"preset"`
	Network    *chain.Network         `gluamapper:"network"`
	Milestones []milestone.Definition `gluamapper:"milestones"`
	Exceptions *chain.Exceptions      `gluamapper:"exceptions"`
}

// LoadNetwork - read a Lua network description
func LoadNetwork(fileName string) (*chain.Config, error) {
	file := &networkFile{}
	if err := ParseConfigurationFile(fileName, file); nil != err {
		return nil, err
	}
	return file.config()
}

// LoadNetworkString - as LoadNetwork for an in-memory chunk
func LoadNetworkString(chunk string) (*chain.Config, error) {
	file := &networkFile{}
	if err := ParseConfigurationString(chunk, file); nil != err {
		return nil, err
	}
	return file.config()
}

// Context - load a network description and build its context
func Context(fileName string) (*chain.Context, error) {
	config, err := LoadNetwork(fileName)
	if nil != err {
		return nil, err
	}
	return chain.NewContext(config)
}

func (file *networkFile) config() (*chain.Config, error) {
	config := &chain.Config{}
	if "" != file.Preset {
		preset, err := chain.Preset(file.Preset)
		if nil != err {
			return nil, errors.Wrapf(err, "preset: %q", file.Preset)
		}
		config = preset
	}

	if nil != file.Network {
		config.Network = *file.Network
	}
	config.Milestones = append(config.Milestones, file.Milestones...)
	if nil != file.Exceptions {
		config.Exceptions.Blocks = append(config.Exceptions.Blocks, file.Exceptions.Blocks...)
		config.Exceptions.Transactions = append(config.Exceptions.Transactions, file.Exceptions.Transactions...)
		if nil == config.Exceptions.TransactionIDFixTable {
			config.Exceptions.TransactionIDFixTable = make(map[string]string)
		}
		for k, v := range file.Exceptions.TransactionIDFixTable {
			config.Exceptions.TransactionIDFixTable[k] = v
		}
	}
	return config, nil
}
