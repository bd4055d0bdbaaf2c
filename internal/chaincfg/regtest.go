// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"math/big"
	"time"
)

// regTestTemplate is the test network template with the regression test
// overrides applied.
func regTestTemplate() netTemplate {
	t := testNetTemplate()

	t.params.ID = Regtest
	t.params.Name = "regtest"
	t.params.MessageStart = [4]byte{0xcc, 0xb5, 0xe9, 0xfe}
	t.params.SubsidyHalvingInterval = 150
	// Nearly any nonce satisfies this limit
	t.params.PowLimit = new(big.Int).Rsh(maxUint256, 1)
	t.params.DefaultPort = 19994
	t.params.DataDir = "regtest"
	t.params.RequireRPCPassword = false
	t.params.DNSSeeds = nil

	t.genesis.Time = time.Unix(1520026653, 0)
	t.genesis.Bits = 0x207fffff
	t.genesis.Nonce = 0
	t.hash = newHashFromStr("1c39e4202d18fe0b8841e9282837378ae9b5e92711a5e942eb2f4b621c8c6253")

	return t
}
