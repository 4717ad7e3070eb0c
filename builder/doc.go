// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package builder assembles, signs and builds transactions of
// every core kind with the defaults of the current milestone
package builder
