// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"regexp"
	"strings"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/mr-tron/base58"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/milestone"
)

// limits of the core assets
const (
	maxUsernameLength        = 20
	maxMultiSignatureKeys    = 16
	maxLegacyLifetime        = 72
	maxVotes                 = 2
	minMultiPayments         = 2
	maxIPFSLength            = 90
	lockHashSize             = 32
	transactionIDSize        = 32
	legacyMultiSignaturePlus = "+"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9!@$&_.]+$`)

type coreHandler struct {
	typ      Type
	versions []uint8
	handler  Handler
}

func coreHandlers() []coreHandler {
	return []coreHandler{
		{TransferType, []uint8{1, 2}, transferHandler{BaseHandler{"transfer", true}}},
		{SecondSignatureType, []uint8{1, 2}, secondSignatureHandler{BaseHandler{"secondSignature", false}}},
		{DelegateRegistrationType, []uint8{1, 2}, delegateRegistrationHandler{BaseHandler{"delegateRegistration", false}}},
		{VoteType, []uint8{1, 2}, voteHandler{BaseHandler{"vote", false}}},
		{MultiSignatureType, []uint8{1}, legacyMultiSignatureHandler{BaseHandler{"multiSignature", false}}},
		{MultiSignatureType, []uint8{2}, multiSignatureHandler{BaseHandler{"multiSignature", false}}},
		{IPFSType, []uint8{2}, ipfsHandler{BaseHandler{"ipfs", false}}},
		{MultiPaymentType, []uint8{2}, multiPaymentHandler{BaseHandler{"multiPayment", true}}},
		{DelegateResignationType, []uint8{2}, delegateResignationHandler{BaseHandler{"delegateResignation", false}}},
		{HTLCLockType, []uint8{2}, htlcLockHandler{htlcHandler{BaseHandler{"htlcLock", true}}}},
		{HTLCClaimType, []uint8{2}, htlcClaimHandler{htlcHandler{BaseHandler{"htlcClaim", false}}}},
		{HTLCRefundType, []uint8{2}, htlcRefundHandler{htlcHandler{BaseHandler{"htlcRefund", false}}}},
	}
}

// transfer
// --------

type transferHandler struct{ BaseHandler }

func (transferHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	m.WriteUint64(data.Amount)
	m.WriteUint32(data.Expiration)
	return writeAddress(m, data.RecipientID)
}

func (transferHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) (err error) {
	if data.Amount, err = m.ReadUint64(); nil != err {
		return err
	}
	if data.Expiration, err = m.ReadUint32(); nil != err {
		return err
	}
	data.RecipientID, err = readAddress(m)
	return err
}

func (transferHandler) Validate(data *Data, network uint8) error {
	if 0 == data.Amount {
		return fault.Schema("transfer amount must be positive")
	}
	return validateRecipient(data.RecipientID, network)
}

// second signature registration
// -----------------------------

type secondSignatureHandler struct{ BaseHandler }

func (secondSignatureHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*SecondSignatureAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	return writeHex(m, asset.PublicKey, crypto.PublicKeySize, fault.ErrInvalidPublicKey)
}

func (secondSignatureHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	publicKey, err := readHex(m, crypto.PublicKeySize)
	if nil != err {
		return err
	}
	data.Asset = &SecondSignatureAsset{PublicKey: publicKey}
	return nil
}

func (secondSignatureHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*SecondSignatureAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if !account.ValidatePublicKey(asset.PublicKey) {
		return fault.Schema("second signature public key is invalid")
	}
	return nil
}

// delegate registration
// ---------------------

type delegateRegistrationHandler struct{ BaseHandler }

func (delegateRegistrationHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*DelegateAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.Username) > 255 {
		return fault.Schema("username too long")
	}
	m.WriteByte(uint8(len(asset.Username)))
	m.WriteBytes([]byte(asset.Username))
	return nil
}

func (delegateRegistrationHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	length, err := m.ReadByte()
	if nil != err {
		return err
	}
	username, err := m.ReadBytes(int(length))
	if nil != err {
		return err
	}
	data.Asset = &DelegateAsset{Username: string(username)}
	return nil
}

func (delegateRegistrationHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*DelegateAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if 0 == len(asset.Username) || len(asset.Username) > maxUsernameLength || !usernamePattern.MatchString(asset.Username) {
		return fault.Schema("invalid delegate username: %q", asset.Username)
	}
	return nil
}

// vote
// ----

type voteHandler struct{ BaseHandler }

func (voteHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*VoteAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.Votes) > 255 {
		return fault.Schema("too many votes")
	}
	m.WriteByte(uint8(len(asset.Votes)))
	for _, vote := range asset.Votes {
		if len(vote) < 1 {
			return fault.ErrInvalidPublicKey
		}
		switch vote[0] {
		case '+':
			m.WriteByte(0x01)
		case '-':
			m.WriteByte(0x00)
		default:
			return fault.Schema("vote must start with + or -")
		}
		if err := writeHex(m, vote[1:], crypto.PublicKeySize, fault.ErrInvalidPublicKey); nil != err {
			return err
		}
	}
	return nil
}

func (voteHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	count, err := m.ReadByte()
	if nil != err {
		return err
	}
	votes := make([]string, 0, count)
	for i := 0; i < int(count); i += 1 {
		direction, err := m.ReadByte()
		if nil != err {
			return err
		}
		publicKey, err := readHex(m, crypto.PublicKeySize)
		if nil != err {
			return err
		}
		if 0x01 == direction {
			votes = append(votes, "+"+publicKey)
		} else {
			votes = append(votes, "-"+publicKey)
		}
	}
	data.Asset = &VoteAsset{Votes: votes}
	return nil
}

func (voteHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*VoteAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if 0 == len(asset.Votes) || len(asset.Votes) > maxVotes {
		return fault.Schema("vote count must be between 1 and %d", maxVotes)
	}
	for _, vote := range asset.Votes {
		if len(vote) < 2 || ('+' != vote[0] && '-' != vote[0]) || !account.ValidatePublicKey(vote[1:]) {
			return fault.Schema("invalid vote: %q", vote)
		}
	}
	return nil
}

// multi signature registration, version 2
// ---------------------------------------

type multiSignatureHandler struct{ BaseHandler }

func (multiSignatureHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*MultiSignatureAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.PublicKeys) > 255 {
		return fault.ErrTooManyParticipants
	}
	m.WriteByte(asset.Min)
	m.WriteByte(uint8(len(asset.PublicKeys)))
	for _, publicKey := range asset.PublicKeys {
		if err := writeHex(m, publicKey, crypto.PublicKeySize, fault.ErrInvalidPublicKey); nil != err {
			return err
		}
	}
	return nil
}

func (multiSignatureHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	min, err := m.ReadByte()
	if nil != err {
		return err
	}
	count, err := m.ReadByte()
	if nil != err {
		return err
	}
	publicKeys := make([]string, 0, count)
	for i := 0; i < int(count); i += 1 {
		publicKey, err := readHex(m, crypto.PublicKeySize)
		if nil != err {
			return err
		}
		publicKeys = append(publicKeys, publicKey)
	}
	data.Asset = &MultiSignatureAsset{Min: min, PublicKeys: publicKeys}
	return nil
}

func (multiSignatureHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*MultiSignatureAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	n := len(asset.PublicKeys)
	if 0 == n || n > maxMultiSignatureKeys {
		return fault.Schema("participant count must be between 1 and %d", maxMultiSignatureKeys)
	}
	if 0 == asset.Min || int(asset.Min) > n {
		return fault.Schema("minimum must be between 1 and %d", n)
	}
	seen := make(map[string]struct{}, n)
	for _, publicKey := range asset.PublicKeys {
		if !account.ValidatePublicKey(publicKey) {
			return fault.Schema("invalid participant: %q", publicKey)
		}
		if _, ok := seen[publicKey]; ok {
			return fault.Schema("duplicate participant: %q", publicKey)
		}
		seen[publicKey] = struct{}{}
	}
	return nil
}

// multi signature registration, version 1
// ---------------------------------------

type legacyMultiSignatureHandler struct{ BaseHandler }

func (legacyMultiSignatureHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*LegacyMultiSignatureAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.Keysgroup) > 255 {
		return fault.ErrTooManyParticipants
	}
	m.WriteByte(asset.Min)
	m.WriteByte(uint8(len(asset.Keysgroup)))
	m.WriteByte(asset.Lifetime)
	for _, key := range asset.Keysgroup {
		publicKey := strings.TrimPrefix(key, legacyMultiSignaturePlus)
		if err := writeHex(m, publicKey, crypto.PublicKeySize, fault.ErrInvalidPublicKey); nil != err {
			return err
		}
	}
	return nil
}

func (legacyMultiSignatureHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	min, err := m.ReadByte()
	if nil != err {
		return err
	}
	count, err := m.ReadByte()
	if nil != err {
		return err
	}
	lifetime, err := m.ReadByte()
	if nil != err {
		return err
	}
	keysgroup := make([]string, 0, count)
	for i := 0; i < int(count); i += 1 {
		publicKey, err := readHex(m, crypto.PublicKeySize)
		if nil != err {
			return err
		}
		keysgroup = append(keysgroup, publicKey)
	}
	data.Asset = &LegacyMultiSignatureAsset{Min: min, Lifetime: lifetime, Keysgroup: keysgroup}
	return nil
}

func (legacyMultiSignatureHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*LegacyMultiSignatureAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	n := len(asset.Keysgroup)
	if 0 == n || n > maxMultiSignatureKeys {
		return fault.Schema("keysgroup size must be between 1 and %d", maxMultiSignatureKeys)
	}
	if 0 == asset.Min || int(asset.Min) > n {
		return fault.Schema("minimum must be between 1 and %d", n)
	}
	if 0 == asset.Lifetime || asset.Lifetime > maxLegacyLifetime {
		return fault.Schema("lifetime must be between 1 and %d", maxLegacyLifetime)
	}
	for _, key := range asset.Keysgroup {
		if !strings.HasPrefix(key, legacyMultiSignaturePlus) || !account.ValidatePublicKey(key[1:]) {
			return fault.Schema("invalid keysgroup entry: %q", key)
		}
	}
	return nil
}

// ipfs
// ----

type ipfsHandler struct{ BaseHandler }

func (ipfsHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*IPFSAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	hash, err := base58.Decode(asset.Hash)
	if nil != err {
		return fault.ErrInvalidIPFSHash
	}
	m.WriteBytes(hash)
	return nil
}

// multihash: function code, digest length, digest
func (ipfsHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	function, err := m.ReadByte()
	if nil != err {
		return err
	}
	length, err := m.ReadByte()
	if nil != err {
		return err
	}
	digest, err := m.ReadBytes(int(length))
	if nil != err {
		return err
	}
	hash := make([]byte, 0, 2+len(digest))
	hash = append(hash, function, length)
	hash = append(hash, digest...)
	data.Asset = &IPFSAsset{Hash: base58.Encode(hash)}
	return nil
}

func (ipfsHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*IPFSAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.Hash) < 2 || len(asset.Hash) > maxIPFSLength {
		return fault.Schema("ipfs hash has invalid length")
	}
	hash, err := base58.Decode(asset.Hash)
	if nil != err || len(hash) < 2 || int(hash[1]) != len(hash)-2 {
		return fault.Schema("ipfs hash is not a multihash")
	}
	return nil
}

// multi payment
// -------------

type multiPaymentHandler struct{ BaseHandler }

func (multiPaymentHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*MultiPaymentAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.Payments) > 0xffff {
		return fault.ErrMaximumPaymentCountExceeded
	}
	m.WriteUint16(uint16(len(asset.Payments)))
	for _, p := range asset.Payments {
		m.WriteUint64(p.Amount)
		if err := writeAddress(m, p.RecipientID); nil != err {
			return err
		}
	}
	return nil
}

func (multiPaymentHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	count, err := m.ReadUint16()
	if nil != err {
		return err
	}
	payments := make([]Payment, 0, count)
	for i := 0; i < int(count); i += 1 {
		amount, err := m.ReadUint64()
		if nil != err {
			return err
		}
		recipient, err := readAddress(m)
		if nil != err {
			return err
		}
		payments = append(payments, Payment{Amount: amount, RecipientID: recipient})
	}
	data.Asset = &MultiPaymentAsset{Payments: payments}
	return nil
}

func (multiPaymentHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*MultiPaymentAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if len(asset.Payments) < minMultiPayments {
		return fault.Schema("at least %d payments are required", minMultiPayments)
	}
	for _, p := range asset.Payments {
		if 0 == p.Amount {
			return fault.Schema("payment amount must be positive")
		}
		if err := validateRecipient(p.RecipientID, network); nil != err {
			return err
		}
	}
	return nil
}

// delegate resignation
// --------------------

type delegateResignationHandler struct{ BaseHandler }

func (delegateResignationHandler) SerializeAsset(*marshalutil.MarshalUtil, *Data) error {
	return nil
}

func (delegateResignationHandler) DeserializeAsset(*marshalutil.MarshalUtil, *Data) error {
	return nil
}

func (delegateResignationHandler) Validate(*Data, uint8) error {
	return nil
}

// hash time locks
// ---------------

type htlcHandler struct{ BaseHandler }

// Enabled - only once the milestone switches locks on
func (htlcHandler) Enabled(m milestone.Milestone) bool {
	return m.HTLCEnabled
}

type htlcLockHandler struct{ htlcHandler }

func (htlcLockHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*HTLCLockAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	m.WriteUint64(data.Amount)
	if err := writeHex(m, asset.SecretHash, lockHashSize, fault.ErrInvalidLockField); nil != err {
		return err
	}
	m.WriteByte(asset.Expiration.Type)
	m.WriteUint32(asset.Expiration.Value)
	return writeAddress(m, data.RecipientID)
}

func (htlcLockHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) (err error) {
	if data.Amount, err = m.ReadUint64(); nil != err {
		return err
	}
	asset := &HTLCLockAsset{}
	if asset.SecretHash, err = readHex(m, lockHashSize); nil != err {
		return err
	}
	if asset.Expiration.Type, err = m.ReadByte(); nil != err {
		return err
	}
	if asset.Expiration.Value, err = m.ReadUint32(); nil != err {
		return err
	}
	if data.RecipientID, err = readAddress(m); nil != err {
		return err
	}
	data.Asset = asset
	return nil
}

func (htlcLockHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*HTLCLockAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if 0 == data.Amount {
		return fault.Schema("lock amount must be positive")
	}
	if _, err := decodeHex(asset.SecretHash, lockHashSize, fault.ErrInvalidLockField); nil != err {
		return fault.Schema("lock secret hash must be %d bytes", lockHashSize)
	}
	switch asset.Expiration.Type {
	case EpochTimestampExpiration, BlockHeightExpiration:
	default:
		return fault.Schema("unknown lock expiration type: %d", asset.Expiration.Type)
	}
	if 0 == asset.Expiration.Value {
		return fault.Schema("lock expiration must be positive")
	}
	return validateRecipient(data.RecipientID, network)
}

type htlcClaimHandler struct{ htlcHandler }

func (htlcClaimHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*HTLCClaimAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if err := writeHex(m, asset.LockTransactionID, transactionIDSize, fault.ErrInvalidLockField); nil != err {
		return err
	}
	return writeHex(m, asset.UnlockSecret, lockHashSize, fault.ErrInvalidLockField)
}

func (htlcClaimHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) (err error) {
	asset := &HTLCClaimAsset{}
	if asset.LockTransactionID, err = readHex(m, transactionIDSize); nil != err {
		return err
	}
	if asset.UnlockSecret, err = readHex(m, lockHashSize); nil != err {
		return err
	}
	data.Asset = asset
	return nil
}

func (htlcClaimHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*HTLCClaimAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if _, err := decodeHex(asset.LockTransactionID, transactionIDSize, fault.ErrInvalidLockField); nil != err {
		return fault.Schema("lock transaction id must be %d bytes", transactionIDSize)
	}
	if _, err := decodeHex(asset.UnlockSecret, lockHashSize, fault.ErrInvalidLockField); nil != err {
		return fault.Schema("unlock secret must be %d bytes", lockHashSize)
	}
	return nil
}

type htlcRefundHandler struct{ htlcHandler }

func (htlcRefundHandler) SerializeAsset(m *marshalutil.MarshalUtil, data *Data) error {
	asset, ok := data.Asset.(*HTLCRefundAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	return writeHex(m, asset.LockTransactionID, transactionIDSize, fault.ErrInvalidLockField)
}

func (htlcRefundHandler) DeserializeAsset(m *marshalutil.MarshalUtil, data *Data) (err error) {
	asset := &HTLCRefundAsset{}
	if asset.LockTransactionID, err = readHex(m, transactionIDSize); nil != err {
		return err
	}
	data.Asset = asset
	return nil
}

func (htlcRefundHandler) Validate(data *Data, network uint8) error {
	asset, ok := data.Asset.(*HTLCRefundAsset)
	if !ok {
		return fault.ErrMissingAsset
	}
	if _, err := decodeHex(asset.LockTransactionID, transactionIDSize, fault.ErrInvalidLockField); nil != err {
		return fault.Schema("lock transaction id must be %d bytes", transactionIDSize)
	}
	return nil
}

func validateRecipient(address string, network uint8) error {
	if !account.ValidateAddress(address, network) {
		return fault.Schema("invalid recipient for network 0x%02x: %q", network, address)
	}
	return nil
}
