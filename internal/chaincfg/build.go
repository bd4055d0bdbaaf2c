// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

func templateFor(id Network) (netTemplate, error) {
	switch id {
	case Main:
		return mainNetTemplate(), nil
	case Testnet:
		return testNetTemplate(), nil
	case Regtest:
		return regTestTemplate(), nil
	}
	return netTemplate{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, id)
}

// Build constructs a fresh parameter set for the given network, including its
// genesis block, and checks the genesis block against the network's expected
// hash and merkle root. The returned value is independent of the registered
// parameter sets.
func Build(id Network) (*Params, error) {
	tmpl, err := templateFor(id)
	if err != nil {
		return nil, err
	}
	return buildParams(tmpl, time.Now(), rand.Int64N)
}

func buildParams(
	tmpl netTemplate,
	now time.Time,
	randN randInt64N,
) (*Params, error) {
	params := tmpl.params
	if err := params.Prefixes.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", params.Name, err)
	}
	block, err := BuildGenesisBlock(tmpl.genesis)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: failed to build genesis block: %w",
			params.Name,
			err,
		)
	}
	if err := VerifyGenesis(params.Name, block, tmpl.hash, tmpl.merkleRoot); err != nil {
		return nil, err
	}
	genesisHash := tmpl.hash
	params.Genesis = tmpl.genesis
	params.GenesisBlock = block
	params.GenesisHash = &genesisHash
	params.GenesisVerified = true
	params.PowLimitBits = blockchain.BigToCompact(params.PowLimit)
	params.FixedSeeds = fixedSeedAddrs(
		tmpl.fixedSeeds,
		params.DefaultPort,
		now,
		randN,
	)
	return &params, nil
}
