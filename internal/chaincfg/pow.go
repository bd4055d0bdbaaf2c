// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	ErrInvalidTarget   = errors.New("invalid proof-of-work target")
	ErrHashAboveTarget = errors.New("block hash exceeds target")
	ErrNonceExhausted  = errors.New("nonce space exhausted")
)

// How many nonces are tried between context checks
const solveCheckInterval = 1 << 12

// CompactToTarget converts a compact (nBits) value to a 256-bit target. The
// first byte is the exponent, the next 3 bytes are the mantissa.
// Target = mantissa * 2^(8*(exp-3)). The sign bit is ignored.
func CompactToTarget(bits uint32) *big.Int {
	exp := bits >> 24
	mantissa := bits & 0x007fffff
	target := new(big.Int).SetUint64(uint64(mantissa))
	if exp <= 3 {
		target.Rsh(target, uint(8*(3-exp)))
	} else {
		target.Lsh(target, uint(8*(exp-3)))
	}
	return target
}

// compactValid reports whether bits decodes to a positive target that fits in
// 256 bits.
func compactValid(bits uint32) bool {
	exp := bits >> 24
	mantissa := bits & 0x007fffff
	if mantissa == 0 {
		return false
	}
	if bits&0x00800000 != 0 {
		return false
	}
	if exp > 34 ||
		(mantissa > 0xff && exp > 33) ||
		(mantissa > 0xffff && exp > 32) {
		return false
	}
	return true
}

// CheckProofOfWork checks that hash satisfies the target encoded in bits and
// that the target does not exceed powLimit.
func CheckProofOfWork(
	hash chainhash.Hash,
	bits uint32,
	powLimit *big.Int,
) error {
	if !compactValid(bits) {
		return fmt.Errorf("%w: bits 0x%08x", ErrInvalidTarget, bits)
	}
	target := CompactToTarget(bits)
	if target.Cmp(powLimit) > 0 {
		return fmt.Errorf(
			"%w: target %064x is above the limit %064x",
			ErrInvalidTarget,
			target,
			powLimit,
		)
	}
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return fmt.Errorf(
			"%w: hash %s, target %064x",
			ErrHashAboveTarget,
			hash,
			target,
		)
	}
	return nil
}

// SolveGenesis searches for a nonce, starting at opts.Nonce, for which the
// genesis block built from opts satisfies its own bits. It returns the nonce
// and the resulting block hash.
func SolveGenesis(
	ctx context.Context,
	opts GenesisOpts,
	powLimit *big.Int,
) (uint32, chainhash.Hash, error) {
	if !compactValid(opts.Bits) {
		return 0, chainhash.Hash{}, fmt.Errorf(
			"%w: bits 0x%08x",
			ErrInvalidTarget,
			opts.Bits,
		)
	}
	target := CompactToTarget(opts.Bits)
	if target.Cmp(powLimit) > 0 {
		return 0, chainhash.Hash{}, fmt.Errorf(
			"%w: bits 0x%08x are above the limit",
			ErrInvalidTarget,
			opts.Bits,
		)
	}
	block, err := BuildGenesisBlock(opts)
	if err != nil {
		return 0, chainhash.Hash{}, err
	}
	header := block.Header
	for nonce := uint64(opts.Nonce); nonce <= math.MaxUint32; nonce++ {
		if nonce%solveCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, chainhash.Hash{}, err
			}
		}
		header.Nonce = uint32(nonce)
		hash := BlockHash(&header)
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			return header.Nonce, hash, nil
		}
	}
	return 0, chainhash.Hash{}, ErrNonceExhausted
}
