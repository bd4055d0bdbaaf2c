// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"time"
)

// testNetTemplate is the main network template with the test network
// overrides applied. Every field not listed here is the main network value.
func testNetTemplate() netTemplate {
	t := mainNetTemplate()

	t.params.ID = Testnet
	t.params.Name = "testnet"
	t.params.MessageStart = [4]byte{0x1b, 0x12, 0xaa, 0xee}
	t.params.AlertPubKey = hexDecode(
		"04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f",
	)
	t.params.DefaultPort = 19999
	t.params.RPCPort = 19998
	t.params.DataDir = "testnet3"

	// Later start time for the same coinbase
	t.genesis.Time = time.Unix(1520026653, 0) // Fri  2 Mar 21:37:33 UTC 2018
	t.genesis.Nonce = 1200555
	t.hash = newHashFromStr("0000049acfc15e46e990e890ed8263afa5b8ba9f106bfc277070a93117139be8")

	t.fixedSeeds = nil
	t.params.DNSSeeds = []DNSSeed{
		{"darkcoin.io", "testnet-seed.mrmetech.me"},
	}

	t.params.Prefixes = AddressPrefixes{
		PubKeyHashAddrID: 139, // starts with x or y
		ScriptHashAddrID: 19,  // starts with 8 or 9
		PrivateKeyID:     239, // starts with 9 or c
		HDPublicKeyID:    [4]byte{0x3a, 0x80, 0x61, 0xa0}, // starts with DRKV
		HDPrivateKeyID:   [4]byte{0x3a, 0x80, 0x58, 0x37}, // starts with DRKP
		HDCoinType:       0x80000001,
	}

	return t
}
