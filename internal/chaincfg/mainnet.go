// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// netTemplate is the flat, fully specified description of a network before
// its genesis block is built and checked.
type netTemplate struct {
	params     Params
	genesis    GenesisOpts
	hash       chainhash.Hash
	merkleRoot chainhash.Hash
	// fixedSeeds are IPv4 addresses in memory (little-endian) order.
	fixedSeeds []uint32
}

// mainNetTemplate returns a fresh copy of the main network description.
func mainNetTemplate() netTemplate {
	return netTemplate{
		params: Params{
			ID:           Main,
			Name:         "main",
			MessageStart: [4]byte{0x7d, 0x5d, 0xa1, 0xea},
			// Starting difficulty is 1 / 2^12
			PowLimit:               new(big.Int).Rsh(maxUint256, 20),
			SubsidyHalvingInterval: 210000,
			DefaultPort:            9999,
			RPCPort:                9645,
			AlertPubKey: hexDecode(
				"048240a8748a80a286b270ba1abc25ced4f2ce5a7847b3610ea3c065131abe3de2a8512ed5ea86320824683fc081835ba019214973e677acd1244f6d0571fc5103",
			),
			Prefixes: AddressPrefixes{
				PubKeyHashAddrID: 28,  // starts with C
				ScriptHashAddrID: 16,  // starts with 7
				PrivateKeyID:     204, // starts with 7 or X
				HDPublicKeyID:    [4]byte{0x02, 0xfe, 0x52, 0xf8}, // starts with drkv
				HDPrivateKeyID:   [4]byte{0x02, 0xfe, 0x52, 0xcc}, // starts with drkp
				HDCoinType:       0x80000005,
			},
			DNSSeeds: []DNSSeed{
				{"curium1", "207.246.120.137"},
				{"curium2", "45.32.214.107"},
				{"1stdnsseedforcurium", "dnsseed.mrmetech.me"},
			},
			RequireRPCPassword: true,
			DataDir:            "",
		},
		genesis: GenesisOpts{
			Timestamp: "Wired 12/Jan/2018 The Grand Experiment Goes Live: I ate my first yam",
			PayoutPubKey: hexDecode(
				"043384710fa689ad5023690c80f3addf8f13f8d45b8c8ab357c96ddae9fac46bd8996b10f4d4604fa08dce601aac4997abcedf92f1fabc21b179c45070ac7b03a9",
			),
			Subsidy: 50 * btcutil.SatoshiPerBitcoin,
			Version: 1,
			Time:    time.Unix(1515982333, 0), // Mon 15 Jan 02:12:13 UTC 2018
			Bits:    0x1e0ffff0,
			Nonce:   113992,
		},
		hash:       newHashFromStr("00000e784f88ffd07483e5e2786e002a780d35dfd4142c8e70c43fb7bb2af937"),
		merkleRoot: newHashFromStr("22f17ff105937d2914cfff2d213006a9327b8aff76ef59e3cbbe0293e453342e"),
		fixedSeeds: []uint32{
			0xb32b80ef, 0x807f6aeb, 0x259dfa0a, 0xa2d16323, 0x6c3dd236,
			0xacf50584, 0x2ea2420a, 0x4e6db2c3, 0x8a80a95e, 0x340b8de5,
			0x253b153a, 0x2e69760f, 0xb2217edd, 0x68ec1783, 0x6c3dd125,
		},
	}
}
