// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/arkecosystem/arkcrypto/account"
)

// decode a hex field of a fixed size, zero size accepts any length
func decodeHex(s string, size int, invalid error) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, invalid
	}
	if size > 0 && size != len(b) {
		return nil, invalid
	}
	return b, nil
}

func writeHex(m *marshalutil.MarshalUtil, s string, size int, invalid error) error {
	b, err := decodeHex(s, size, invalid)
	if nil != err {
		return err
	}
	m.WriteBytes(b)
	return nil
}

func readHex(m *marshalutil.MarshalUtil, size int) (string, error) {
	b, err := m.ReadBytes(size)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func writeAddress(m *marshalutil.MarshalUtil, address string) error {
	b, err := account.AddressToBuffer(address)
	if nil != err {
		return err
	}
	m.WriteBytes(b)
	return nil
}

func readAddress(m *marshalutil.MarshalUtil) (string, error) {
	b, err := m.ReadBytes(account.AddressSize)
	if nil != err {
		return "", err
	}
	return account.AddressFromBuffer(b)
}

// bytes left to read
func remaining(m *marshalutil.MarshalUtil) int {
	return len(m.Bytes()) - m.ReadOffset()
}

// the byte at the read offset plus n, without consuming it
func peek(m *marshalutil.MarshalUtil, n int) (byte, bool) {
	buffer := m.Bytes()
	i := m.ReadOffset() + n
	if i >= len(buffer) {
		return 0, false
	}
	return buffer[i], true
}
