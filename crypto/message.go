// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"encoding/hex"
)

// SignedMessage - a text message with an ECDSA signature over its SHA-256
type SignedMessage struct {
	PublicKey string `json:"publickey"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// SignMessage - sign a text message with a raw private key
func SignMessage(message string, privateKey []byte) (*SignedMessage, error) {
	publicKey, err := PublicKey(privateKey)
	if nil != err {
		return nil, err
	}
	signature, err := SignECDSA(Sha256([]byte(message)), privateKey)
	if nil != err {
		return nil, err
	}
	return &SignedMessage{
		PublicKey: hex.EncodeToString(publicKey),
		Signature: hex.EncodeToString(signature),
		Message:   message,
	}, nil
}

// Verify - check the signature; malformed hex never verifies
func (m *SignedMessage) Verify() bool {
	publicKey, err := hex.DecodeString(m.PublicKey)
	if nil != err {
		return false
	}
	signature, err := hex.DecodeString(m.Signature)
	if nil != err {
		return false
	}
	return VerifyECDSA(Sha256([]byte(m.Message)), signature, publicKey)
}
