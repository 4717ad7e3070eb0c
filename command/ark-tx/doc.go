// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ark-tx - offline ARK transaction tool
//
// decodes and verifies serialized transactions, builds signed
// transfers, derives addresses and signs text messages for a preset
// network or one described by a Lua configuration file
package main
