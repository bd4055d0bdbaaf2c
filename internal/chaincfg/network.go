// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNetwork is returned when a network name cannot be parsed.
var ErrUnknownNetwork = errors.New("unknown network")

// Network identifies one of the supported networks.
type Network int

const (
	Main Network = iota
	Testnet
	Regtest
)

// Networks lists the supported networks in construction order.
var Networks = []Network{Main, Testnet, Regtest}

var networkStrings = map[Network]string{
	Main:    "main",
	Testnet: "testnet",
	Regtest: "regtest",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", int(n))
}

// Supported reports whether n is one of the known networks.
func (n Network) Supported() bool {
	_, ok := networkStrings[n]
	return ok
}

// ParseNetwork maps a network name to its identifier. "mainnet" and
// "testnet3" are accepted as aliases.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return Main, nil
	case "testnet", "testnet3":
		return Testnet, nil
	case "regtest":
		return Regtest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
