// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"bytes"
	"time"

	x11 "github.com/bitbandi/go-x11"
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisScriptBits is the difficulty value pushed first in the genesis
	// coinbase signature script. It is fixed across networks and does not
	// follow the header bits.
	genesisScriptBits = 486604799 // 0x1d00ffff

	// genesisExtraNonce is pushed as a one byte data push, not as OP_4.
	genesisExtraNonce = 4
)

// GenesisOpts holds the literal inputs of a genesis block.
type GenesisOpts struct {
	// Timestamp is the arbitrary string embedded in the coinbase.
	Timestamp    string
	PayoutPubKey []byte
	Subsidy      btcutil.Amount
	Version      int32
	Time         time.Time
	Bits         uint32
	Nonce        uint32
}

// BuildGenesisBlock deterministically builds the genesis block described by
// opts. It performs no I/O.
func BuildGenesisBlock(opts GenesisOpts) (*wire.MsgBlock, error) {
	coinbase, err := genesisCoinbaseTx(opts)
	if err != nil {
		return nil, err
	}
	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    opts.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: CalcMerkleRoot([]*wire.MsgTx{coinbase}),
			Timestamp:  opts.Time,
			Bits:       opts.Bits,
			Nonce:      opts.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	return block, nil
}

func genesisCoinbaseTx(opts GenesisOpts) (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisScriptBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisExtraNonce}).
		AddData([]byte(opts.Timestamp)).
		Script()
	if err != nil {
		return nil, err
	}
	pkScript, err := txscript.NewScriptBuilder().
		AddData(opts.PayoutPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(opts.Subsidy), pkScript))
	return tx, nil
}

// CalcMerkleRoot returns the merkle root over txs. For a single transaction
// the root is that transaction's hash.
func CalcMerkleRoot(txs []*wire.MsgTx) chainhash.Hash {
	if len(txs) == 0 {
		return chainhash.Hash{}
	}
	utxs := make([]*btcutil.Tx, 0, len(txs))
	for _, tx := range txs {
		utxs = append(utxs, btcutil.NewTx(tx))
	}
	merkles := blockchain.BuildMerkleTreeStore(utxs, false)
	return *merkles[len(merkles)-1]
}

// BlockHash returns the proof-of-work hash of a block header, which is the
// X11 chained hash of its 80 byte serialization.
func BlockHash(header *wire.BlockHeader) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	// Writing to a bytes.Buffer cannot fail.
	_ = header.Serialize(&buf)
	var ret chainhash.Hash
	x11.New().Hash(buf.Bytes(), ret[:])
	return ret
}
