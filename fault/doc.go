// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Each error
// belongs to a class (format, schema, version, signature...) which
// callers can test with the IsErrXxx functions; the tests see
// through wrapping added by github.com/pkg/errors.
package fault
