// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// bigOne is 1 represented as a big.Int.
	bigOne = big.NewInt(1)

	// maxUint256 is ~uint256(0).
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// ErrDuplicatePrefix is returned when two purposes of one network share the
// same version bytes.
var ErrDuplicatePrefix = errors.New("duplicate address version bytes")

// Purpose identifies what an address version prefix is used for.
type Purpose int

const (
	PubKeyHash Purpose = iota
	ScriptHash
	PrivateKey
	ExtendedPublicKey
	ExtendedPrivateKey
	CoinType
)

// Purposes lists every Purpose in declaration order.
var Purposes = []Purpose{
	PubKeyHash,
	ScriptHash,
	PrivateKey,
	ExtendedPublicKey,
	ExtendedPrivateKey,
	CoinType,
}

var purposeStrings = map[Purpose]string{
	PubKeyHash:         "pubkey-hash",
	ScriptHash:         "script-hash",
	PrivateKey:         "private-key",
	ExtendedPublicKey:  "extended-public-key",
	ExtendedPrivateKey: "extended-private-key",
	CoinType:           "bip44-coin-type",
}

func (p Purpose) String() string {
	if s, ok := purposeStrings[p]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Purpose (%d)", int(p))
}

// AddressPrefixes holds the version bytes prepended to text-encoded
// addresses and keys.
type AddressPrefixes struct {
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	HDPublicKeyID    [4]byte
	HDPrivateKeyID   [4]byte
	// HDCoinType is the hardened BIP44 coin type.
	HDCoinType uint32
}

// VersionBytes returns the version byte sequence used for the given purpose.
// The coin type is rendered big-endian.
func (a AddressPrefixes) VersionBytes(p Purpose) []byte {
	switch p {
	case PubKeyHash:
		return []byte{a.PubKeyHashAddrID}
	case ScriptHash:
		return []byte{a.ScriptHashAddrID}
	case PrivateKey:
		return []byte{a.PrivateKeyID}
	case ExtendedPublicKey:
		return append([]byte(nil), a.HDPublicKeyID[:]...)
	case ExtendedPrivateKey:
		return append([]byte(nil), a.HDPrivateKeyID[:]...)
	case CoinType:
		ret := make([]byte, 4)
		binary.BigEndian.PutUint32(ret, a.HDCoinType)
		return ret
	}
	return nil
}

// Validate checks that no two purposes share the same version bytes.
func (a AddressPrefixes) Validate() error {
	seen := make(map[string]Purpose, len(Purposes))
	for _, p := range Purposes {
		key := string(a.VersionBytes(p))
		if other, ok := seen[key]; ok {
			return fmt.Errorf(
				"%w: %s and %s both use %x",
				ErrDuplicatePrefix,
				other,
				p,
				a.VersionBytes(p),
			)
		}
		seen[key] = p
	}
	return nil
}

// DNSSeed identifies a DNS seed used for bootstrap peer discovery.
type DNSSeed struct {
	Name string
	Host string
}

func (d DNSSeed) String() string {
	return d.Name + "=" + d.Host
}

// Params holds the complete configuration of one network. A Params value is
// built once during package initialization and is shared by every caller.
// Callers must not modify it or anything it references.
type Params struct {
	ID   Network
	Name string

	// MessageStart prefixes every wire message on this network.
	MessageStart [4]byte

	PowLimit               *big.Int
	PowLimitBits           uint32
	SubsidyHalvingInterval int32

	DefaultPort uint16
	RPCPort     uint16

	AlertPubKey []byte
	Prefixes    AddressPrefixes

	DNSSeeds   []DNSSeed
	FixedSeeds []*wire.NetAddress

	// Genesis holds the inputs GenesisBlock was built from.
	Genesis      GenesisOpts
	GenesisBlock *wire.MsgBlock
	GenesisHash  *chainhash.Hash

	// GenesisVerified is set once the genesis block matched the expected
	// hash and merkle root during construction.
	GenesisVerified bool

	RequireRPCPassword bool
	DataDir            string
}

// Net returns the message start bytes as the wire network identifier.
func (p *Params) Net() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:]))
}

// VersionBytes is shorthand for p.Prefixes.VersionBytes.
func (p *Params) VersionBytes(purpose Purpose) []byte {
	return p.Prefixes.VersionBytes(purpose)
}

// GenesisMerkleRoot returns the merkle root stored in the genesis header.
func (p *Params) GenesisMerkleRoot() chainhash.Hash {
	return p.GenesisBlock.Header.MerkleRoot
}

func (p *Params) String() string {
	return p.Name
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic("invalid hash in source file: " + hexStr)
	}
	return *hash
}

// hexDecode decodes a hard-coded hex literal and panics on failure.
func hexDecode(hexStr string) []byte {
	ret, err := hex.DecodeString(hexStr)
	if err != nil {
		panic("invalid hex in source file: " + hexStr)
	}
	return ret
}
