// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ErrGenesisMismatch is wrapped by every GenesisError.
var ErrGenesisMismatch = errors.New("genesis integrity check failed")

// GenesisError reports a computed genesis value that differs from the
// expected constant of a network. It indicates a defect in the source, never
// bad user input.
type GenesisError struct {
	Network string
	Field   string
	Want    chainhash.Hash
	Got     chainhash.Hash
}

func (e *GenesisError) Error() string {
	return fmt.Sprintf(
		"%s: %s genesis %s is %s, expected %s",
		ErrGenesisMismatch,
		e.Network,
		e.Field,
		e.Got,
		e.Want,
	)
}

func (e *GenesisError) Unwrap() error {
	return ErrGenesisMismatch
}

// VerifyGenesis recomputes the merkle root and the header hash of block and
// compares them against the expected constants of the named network.
func VerifyGenesis(
	network string,
	block *wire.MsgBlock,
	wantHash chainhash.Hash,
	wantMerkleRoot chainhash.Hash,
) error {
	merkleRoot := CalcMerkleRoot(block.Transactions)
	if merkleRoot != block.Header.MerkleRoot {
		return &GenesisError{
			Network: network,
			Field:   "header merkle root",
			Want:    merkleRoot,
			Got:     block.Header.MerkleRoot,
		}
	}
	if merkleRoot != wantMerkleRoot {
		return &GenesisError{
			Network: network,
			Field:   "merkle root",
			Want:    wantMerkleRoot,
			Got:     merkleRoot,
		}
	}
	hash := BlockHash(&block.Header)
	if hash != wantHash {
		return &GenesisError{
			Network: network,
			Field:   "hash",
			Want:    wantHash,
			Got:     hash,
		}
	}
	return nil
}
