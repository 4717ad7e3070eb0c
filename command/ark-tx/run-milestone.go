// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func runMilestone(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	height := m.manager.Context.Height()
	if s := c.Args().First(); "" != s {
		h, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return errors.Wrapf(err, "height: %q", s)
		}
		height = h
	}

	return printJson(m.w, m.manager.Context.MilestoneAt(height))
}
