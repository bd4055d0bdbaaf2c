// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package address renders keys and script hashes as text using the version
// bytes of a network.
package address

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const (
	hash160Size       = ripemd160.Size
	privateKeySize    = 32
	extendedKeySize   = 78
	extendedBodySize  = extendedKeySize - 4
	checksumSize      = 4
	compressedKeyFlag = 0x01
)

var (
	ErrWrongNetwork = errors.New("address is for a different network")
	ErrInvalidKey   = errors.New("invalid key encoding")
)

// Address is a decoded pay-to-pubkey-hash or pay-to-script-hash address.
type Address struct {
	Purpose chaincfg.Purpose
	Hash    [hash160Size]byte
}

// Hash160 returns RIPEMD160(SHA256(data)).
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	// hash.Hash writes never fail
	_, _ = h.Write(sum[:])
	return h.Sum(nil)
}

// EncodePubKeyHash returns the pay-to-pubkey-hash address of a serialized
// public key on the given network.
func EncodePubKeyHash(params *chaincfg.Params, pubKey []byte) string {
	return base58.CheckEncode(Hash160(pubKey), params.Prefixes.PubKeyHashAddrID)
}

// EncodeScriptHash returns the pay-to-script-hash address of a redeem script
// on the given network.
func EncodeScriptHash(params *chaincfg.Params, script []byte) string {
	return base58.CheckEncode(Hash160(script), params.Prefixes.ScriptHashAddrID)
}

// DecodeAddress parses a pay-to-pubkey-hash or pay-to-script-hash address and
// checks that its version byte belongs to the given network.
func DecodeAddress(params *chaincfg.Params, s string) (*Address, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}
	if len(payload) != hash160Size {
		return nil, fmt.Errorf(
			"invalid address payload length %d",
			len(payload),
		)
	}
	ret := &Address{}
	switch version {
	case params.Prefixes.PubKeyHashAddrID:
		ret.Purpose = chaincfg.PubKeyHash
	case params.Prefixes.ScriptHashAddrID:
		ret.Purpose = chaincfg.ScriptHash
	default:
		return nil, fmt.Errorf(
			"%w: version %d is not used by %s",
			ErrWrongNetwork,
			version,
			params.Name,
		)
	}
	copy(ret.Hash[:], payload)
	return ret, nil
}

// EncodePrivateKey returns the wallet import format of a 32 byte private key.
func EncodePrivateKey(
	params *chaincfg.Params,
	key []byte,
	compressed bool,
) (string, error) {
	if len(key) != privateKeySize {
		return "", fmt.Errorf("%w: key length %d", ErrInvalidKey, len(key))
	}
	payload := append([]byte(nil), key...)
	if compressed {
		payload = append(payload, compressedKeyFlag)
	}
	return base58.CheckEncode(payload, params.Prefixes.PrivateKeyID), nil
}

// DecodePrivateKey parses a wallet import format key for the given network.
func DecodePrivateKey(
	params *chaincfg.Params,
	s string,
) (key []byte, compressed bool, err error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode private key: %w", err)
	}
	if version != params.Prefixes.PrivateKeyID {
		return nil, false, fmt.Errorf(
			"%w: version %d is not used by %s",
			ErrWrongNetwork,
			version,
			params.Name,
		)
	}
	switch {
	case len(payload) == privateKeySize:
		return payload, false, nil
	case len(payload) == privateKeySize+1 && payload[privateKeySize] == compressedKeyFlag:
		return payload[:privateKeySize], true, nil
	}
	return nil, false, fmt.Errorf("%w: payload length %d", ErrInvalidKey, len(payload))
}

// EncodeExtendedKey prefixes a serialized BIP32 key body (depth, parent
// fingerprint, child number, chain code and key data) with the network's
// extended key version and renders it with a checksum.
func EncodeExtendedKey(
	params *chaincfg.Params,
	private bool,
	body []byte,
) (string, error) {
	if len(body) != extendedBodySize {
		return "", fmt.Errorf("%w: extended key body length %d", ErrInvalidKey, len(body))
	}
	purpose := chaincfg.ExtendedPublicKey
	if private {
		purpose = chaincfg.ExtendedPrivateKey
	}
	buf := make([]byte, 0, extendedKeySize+checksumSize)
	buf = append(buf, params.VersionBytes(purpose)...)
	buf = append(buf, body...)
	buf = append(buf, chainhash.DoubleHashB(buf)[:checksumSize]...)
	return base58.Encode(buf), nil
}

// DecodeExtendedKey parses an extended key for the given network and returns
// whether it is private along with the key body.
func DecodeExtendedKey(
	params *chaincfg.Params,
	s string,
) (private bool, body []byte, err error) {
	raw := base58.Decode(s)
	if len(raw) != extendedKeySize+checksumSize {
		return false, nil, fmt.Errorf("%w: length %d", ErrInvalidKey, len(raw))
	}
	data, checksum := raw[:extendedKeySize], raw[extendedKeySize:]
	if !bytes.Equal(chainhash.DoubleHashB(data)[:checksumSize], checksum) {
		return false, nil, fmt.Errorf("%w: %w", ErrInvalidKey, base58.ErrChecksum)
	}
	version := data[:4]
	switch {
	case bytes.Equal(version, params.VersionBytes(chaincfg.ExtendedPublicKey)):
		private = false
	case bytes.Equal(version, params.VersionBytes(chaincfg.ExtendedPrivateKey)):
		private = true
	default:
		return false, nil, fmt.Errorf(
			"%w: extended key version %x is not used by %s",
			ErrWrongNetwork,
			version,
			params.Name,
		)
	}
	return private, data[4:], nil
}

// CoinTypePath returns the BIP44 account path prefix of the network.
func CoinTypePath(params *chaincfg.Params) string {
	return fmt.Sprintf(
		"m/44'/%d'",
		params.Prefixes.HDCoinType&^0x80000000,
	)
}
