// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"encoding/binary"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

const oneWeek = 7 * 24 * time.Hour

// randInt64N returns a uniform value in [0, n).
type randInt64N func(n int64) int64

// fixedSeedAddrs converts hard-coded IPv4 seeds into peer addresses on the
// given port. Each address gets a last-seen time strictly between one and two
// weeks before now.
func fixedSeedAddrs(
	seeds []uint32,
	port uint16,
	now time.Time,
	randN randInt64N,
) []*wire.NetAddress {
	if len(seeds) == 0 {
		return nil
	}
	week := int64(oneWeek / time.Second)
	ret := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		var ip [4]byte
		binary.LittleEndian.PutUint32(ip[:], seed)
		// Strictly inside (now-2w, now-1w)
		offset := week + 1 + randN(week-1)
		ts := time.Unix(now.Unix()-offset, 0)
		ret = append(
			ret,
			wire.NewNetAddressTimestamp(
				ts,
				wire.SFNodeNetwork,
				net.IPv4(ip[0], ip[1], ip[2], ip[3]),
				port,
			),
		)
	}
	return ret
}
