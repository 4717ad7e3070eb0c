// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package milestone

import (
	"sort"

	"github.com/arkecosystem/arkcrypto/fault"
)

// Table - merged milestones in strictly increasing height order
type Table []Milestone

// NewTable - validate and merge the definitions of a network
//
// each milestone inherits every field it does not set from its
// predecessor; object valued fields replace the inherited value
func NewTable(definitions []Definition) (Table, error) {
	if 0 == len(definitions) {
		return nil, fault.ErrMissingMilestones
	}

	sorted := make([]Definition, len(definitions))
	copy(sorted, definitions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Height < sorted[j].Height
	})

	previous := Milestone{
		VendorFieldLength: DefaultVendorFieldLength,
		MultiPaymentLimit: DefaultMultiPaymentLimit,
		Fees:              Fees{StaticFees: map[string]uint64{}},
	}
	table := make(Table, 0, len(sorted))
	for i, d := range sorted {
		if 0 == d.Height || (i > 0 && d.Height == sorted[i-1].Height) {
			return nil, fault.ErrInvalidMilestoneHeight
		}
		m := merge(previous, d)
		table = append(table, m)
		previous = m
	}

	if err := validateRounds(sorted); nil != err {
		return nil, err
	}
	return table, nil
}

// the delegate count may only change at the start of a round of the
// count last set; definitions that do not set a count are ignored
func validateRounds(sorted []Definition) error {
	var previous *Definition
	for i := range sorted {
		current := &sorted[i]
		if nil == current.ActiveDelegates {
			continue
		}
		if nil != previous && *previous.ActiveDelegates != *current.ActiveDelegates {
			delegates := uint64(*previous.ActiveDelegates)
			if 0 == delegates || 0 != (current.Height-previous.Height)%delegates {
				return fault.InvalidMilestone(current.Height)
			}
		}
		previous = current
	}
	return nil
}

// index of the milestone in force at a height
func (t Table) indexAt(height uint64) int {
	i := sort.Search(len(t), func(i int) bool {
		return t[i].Height > height
	})
	if 0 == i {
		return 0
	}
	return i - 1
}

// At - the milestone in force at a height
func (t Table) At(height uint64) Milestone {
	return t[t.indexAt(height)]
}
