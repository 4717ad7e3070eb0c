// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/milestone"
)

func TestValidNames(t *testing.T) {
	for _, name := range chain.Names() {
		assert.True(t, chain.Valid(name), name)
	}
	assert.False(t, chain.Valid("nosuchnet"))
	assert.False(t, chain.Valid(""))
}

func TestPresets(t *testing.T) {
	for _, name := range chain.Names() {
		c, err := chain.FromPreset(name)
		if !assert.NoError(t, err, name) {
			continue
		}
		assert.Equal(t, name, c.Network().Name)
		assert.Equal(t, uint64(1), c.Height())
		fee, ok := c.Milestone().StaticFee("transfer")
		assert.True(t, ok, name)
		assert.Equal(t, uint64(10000000), fee, name)
	}

	_, err := chain.FromPreset("nonet")
	assert.Equal(t, fault.ErrInvalidNetworkPreset, err)
}

func TestNetworkBytes(t *testing.T) {
	mainnet, err := chain.Preset(chain.Mainnet)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x17), mainnet.Network.PubKeyHash)
	assert.Equal(t, uint8(170), mainnet.Network.WIF)

	devnet, err := chain.Preset(chain.Devnet)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x1e), devnet.Network.PubKeyHash)
}

func TestVersionSupport(t *testing.T) {
	c, err := chain.FromPreset(chain.Devnet)
	if !assert.NoError(t, err) {
		return
	}

	assert.True(t, c.IsSupportedVersion(1))
	assert.False(t, c.IsSupportedVersion(2))
	assert.Equal(t, 64, c.MaxVendorFieldLength())

	assert.NoError(t, c.SetHeight(2850000))
	assert.True(t, c.IsNewMilestone())
	assert.False(t, c.IsSupportedVersion(1))
	assert.True(t, c.IsSupportedVersion(2))
	assert.Equal(t, 255, c.MaxVendorFieldLength())

	// earlier milestones remain reachable without moving
	assert.False(t, c.MilestoneAt(100).AIP11)
	assert.True(t, c.Milestone().AIP11)

	assert.Equal(t, fault.ErrHeightRewind, c.SetHeight(1))
}

func TestInvalidMilestonesAreFatal(t *testing.T) {
	delegates := uint32(51)
	changed := uint32(53)
	config := &chain.Config{
		Network: chain.Network{Name: "broken", PubKeyHash: 0x17},
		Milestones: []milestone.Definition{
			{Height: 1, ActiveDelegates: &delegates},
			{Height: 10, ActiveDelegates: &changed},
		},
	}

	_, err := chain.NewContext(config)
	assert.True(t, fault.IsErrConfiguration(err))
	assert.Panics(t, func() { chain.MustNewContext(config) })
}

func TestExceptions(t *testing.T) {
	config, err := chain.Preset(chain.Devnet)
	if !assert.NoError(t, err) {
		return
	}
	config.Exceptions = chain.Exceptions{
		Blocks:                []string{"block"},
		Transactions:          []string{"transaction"},
		TransactionIDFixTable: map[string]string{"computed": "historical"},
	}

	c := chain.MustNewContext(config)
	assert.True(t, c.IsException("block"))
	assert.True(t, c.IsException("transaction"))
	assert.False(t, c.IsException("other"))
	assert.Equal(t, "historical", c.FixID("computed"))
	assert.Equal(t, "other", c.FixID("other"))
}

func TestSlotTime(t *testing.T) {
	c, err := chain.FromPreset(chain.Mainnet)
	if !assert.NoError(t, err) {
		return
	}
	epoch := time.Date(2017, time.March, 21, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, uint32(0), c.Time(epoch))
	assert.Equal(t, uint32(41268326), c.Time(epoch.Add(41268326*time.Second)))
	assert.Equal(t, uint32(0), c.Time(epoch.Add(-time.Hour)))
}
