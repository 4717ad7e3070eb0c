// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/milestone"
)

// Context - immutable network parameters plus the moving height
//
// one context is built per network and passed to every codec,
// fee resolver and factory that needs it
type Context struct {
	network    Network
	exceptions map[string]struct{}
	idFixes    map[string]string
	resolver   *milestone.Resolver
	log        *logger.L
}

// NewContext - validate a configuration and build its context
func NewContext(config *Config) (*Context, error) {
	table, err := milestone.NewTable(config.Milestones)
	if nil != err {
		return nil, errors.Wrapf(err, "network: %q", config.Network.Name)
	}

	c := &Context{
		network:    config.Network,
		exceptions: make(map[string]struct{}),
		idFixes:    make(map[string]string),
		resolver:   milestone.NewResolver(table),
		log:        logger.New("chain"),
	}
	for _, id := range config.Exceptions.Blocks {
		c.exceptions[id] = struct{}{}
	}
	for _, id := range config.Exceptions.Transactions {
		c.exceptions[id] = struct{}{}
	}
	for computed, historical := range config.Exceptions.TransactionIDFixTable {
		c.idFixes[computed] = historical
	}

	c.log.Infof("network: %s  pubKeyHash: 0x%02x  milestones: %d", c.network.Name, c.network.PubKeyHash, len(table))
	return c, nil
}

// MustNewContext - as NewContext but an invalid configuration is fatal
func MustNewContext(config *Config) *Context {
	c, err := NewContext(config)
	fault.PanicIfError("chain.NewContext", err)
	return c
}

// FromPreset - context for one of the preset networks
func FromPreset(name string) (*Context, error) {
	config, err := Preset(name)
	if nil != err {
		return nil, err
	}
	return NewContext(config)
}

// Network - static network parameters
func (c *Context) Network() Network {
	return c.network
}

// SetHeight - advance to a new height, logging milestone changes
func (c *Context) SetHeight(height uint64) error {
	err := c.resolver.SetHeight(height)
	if nil != err {
		return err
	}
	if c.resolver.IsNew() {
		c.log.Infof("milestone active at height: %d", height)
	}
	return nil
}

// Height - the current height
func (c *Context) Height() uint64 {
	return c.resolver.Height()
}

// Milestone - the milestone in force at the current height
func (c *Context) Milestone() milestone.Milestone {
	return c.resolver.Current()
}

// MilestoneAt - the milestone in force at an arbitrary height
func (c *Context) MilestoneAt(height uint64) milestone.Milestone {
	return c.resolver.At(height)
}

// Milestones - the full merged table
func (c *Context) Milestones() milestone.Table {
	return c.resolver.Table()
}

// IsNewMilestone - true when a milestone begins at the current height
func (c *Context) IsNewMilestone() bool {
	return c.resolver.IsNew()
}

// IsSupportedVersion - version 2 once aip11 is active, version 1 before
func (c *Context) IsSupportedVersion(version uint8) bool {
	if c.Milestone().AIP11 {
		return 2 == version
	}
	return 1 == version
}

// MaxVendorFieldLength - the vendor field limit in bytes
func (c *Context) MaxVendorFieldLength() int {
	return c.Milestone().VendorFieldLength
}

// IsException - block or transaction id whitelisted on this network
func (c *Context) IsException(id string) bool {
	_, ok := c.exceptions[id]
	return ok
}

// FixID - map a computed transaction id to the id recorded on chain
//
// a few historical transactions were hashed incorrectly; their
// recorded id must be used in place of the computed one
func (c *Context) FixID(id string) string {
	if historical, ok := c.idFixes[id]; ok {
		return historical
	}
	return id
}

// Time - seconds since the epoch of the current milestone
func (c *Context) Time(now time.Time) uint32 {
	epoch, err := time.Parse(time.RFC3339, c.Milestone().Epoch)
	if nil != err || now.Before(epoch) {
		return 0
	}
	return uint32(now.Sub(epoch) / time.Second)
}
