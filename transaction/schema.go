// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/fault"
)

// Validate - structural checks of transaction data
//
// strict mode additionally binds the data to this network and to
// the vendor field limit of the current milestone
func (c *Codec) Validate(data *Data, strict bool) error {
	if 1 != data.Version && 2 != data.Version {
		return fault.Schema("version must be 1 or 2, got: %d", data.Version)
	}
	if 1 == data.Version && !data.IsCore() {
		return fault.Schema("version 1 only carries core types")
	}

	handler, err := c.registry.Handler(data.InternalType(), data.Version)
	if nil != err {
		return fault.Schema("unknown transaction type: %s version: %d", data.InternalType(), data.Version)
	}

	if strict && c.context.Network().PubKeyHash != data.Network {
		return fault.Schema("network 0x%02x does not match 0x%02x", data.Network, c.context.Network().PubKeyHash)
	}
	if !account.ValidatePublicKey(data.SenderPublicKey) {
		return fault.Schema("invalid sender public key: %q", data.SenderPublicKey)
	}

	if 0 == data.Fee && !(data.IsCore() && (HTLCClaimType == data.Type || HTLCRefundType == data.Type)) {
		return fault.Schema("fee must be positive")
	}
	if data.IsCore() && 0 != data.Amount && TransferType != data.Type && HTLCLockType != data.Type {
		return fault.Schema("amount must be zero for: %s", handler.Key())
	}

	if "" != data.VendorField {
		if !handler.HasVendorField() {
			if strict {
				return fault.Schema("vendor field not allowed for: %s", handler.Key())
			}
		} else if len(data.VendorField) > maxVendorFieldBytes {
			return fault.Schema("vendor field exceeds %d bytes", maxVendorFieldBytes)
		} else if strict && len(data.VendorField) > c.context.MaxVendorFieldLength() {
			return fault.Schema("vendor field exceeds %d bytes", c.context.MaxVendorFieldLength())
		}
	}

	if err := validateSignatures(data); nil != err {
		return err
	}

	return handler.Validate(data, data.Network)
}

func validateSignatures(data *Data) error {
	for _, s := range []string{data.Signature, data.SecondSignature, data.SignSignature} {
		if "" == s {
			continue
		}
		if _, err := hex.DecodeString(s); nil != err {
			return fault.Schema("signature is not hex")
		}
	}

	seen := make(map[string]struct{}, len(data.Signatures))
	for _, s := range data.Signatures {
		if _, err := hex.DecodeString(s); nil != err {
			return fault.Schema("signature is not hex")
		}
		if 2 == data.Version && 2*schnorrPartSize != len(s) {
			return fault.Schema("multi signature must be %d bytes", schnorrPartSize)
		}
		if _, ok := seen[s]; ok {
			return fault.Schema("duplicate multi signature")
		}
		seen[s] = struct{}{}
	}
	return nil
}
