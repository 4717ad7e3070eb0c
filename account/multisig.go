// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// PublicKeyFromMultiSignature - aggregate key of a multi signature group
//
// the minimum is hashed as a two digit hex passphrase and its public
// key added to every participant key
func PublicKeyFromMultiSignature(min uint8, publicKeys []string) (string, error) {
	if 0 == min || int(min) > len(publicKeys) {
		return "", fault.ErrMultiSignatureMinimum
	}

	keys := make([][]byte, 0, len(publicKeys)+1)
	minKey := KeyPairFromPassphrase(fmt.Sprintf("%02x", min))
	keys = append(keys, minKey.PublicKey)
	for _, p := range publicKeys {
		k, err := hex.DecodeString(p)
		if nil != err {
			return "", fault.ErrInvalidPublicKey
		}
		keys = append(keys, k)
	}

	sum, err := crypto.AddPublicKeys(keys...)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
