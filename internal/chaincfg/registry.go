// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chaincfg

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrAmbiguousNetwork is returned when configuration requests more than
	// one non-main network.
	ErrAmbiguousNetwork = errors.New(
		"invalid combination of testnet and regtest",
	)

	// ErrRegistrySealed is the panic value when selecting a network after the
	// selection was sealed.
	ErrRegistrySealed = errors.New("network selection is sealed")
)

// Registry owns the parameter sets of every supported network and tracks which
// one is active. Reads of the active set are lock-free.
type Registry struct {
	mu     sync.Mutex
	params map[Network]*Params
	active atomic.Pointer[Params]
	sealed atomic.Bool
}

// NewRegistry builds and checks the parameter sets of all networks in the
// order Main, Testnet, Regtest. The initial active network is Main.
func NewRegistry() (*Registry, error) {
	return newRegistry(time.Now(), rand.Int64N)
}

func newRegistry(now time.Time, randN randInt64N) (*Registry, error) {
	r := &Registry{
		params: make(map[Network]*Params, len(Networks)),
	}
	for _, id := range Networks {
		tmpl, err := templateFor(id)
		if err != nil {
			return nil, err
		}
		p, err := buildParams(tmpl, now, randN)
		if err != nil {
			return nil, err
		}
		r.params[id] = p
	}
	r.active.Store(r.params[Main])
	return r, nil
}

// SelectNetwork makes id the active network. It panics if id is not a
// supported network or if the registry has been sealed.
func (r *Registry) SelectNetwork(id Network) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed.Load() {
		panic(ErrRegistrySealed)
	}
	p, ok := r.params[id]
	if !ok {
		panic(fmt.Sprintf("chaincfg: unsupported network %s", id))
	}
	r.active.Store(p)
}

// ActiveParams returns the parameter set of the active network. The value is
// shared and must not be modified.
func (r *Registry) ActiveParams() *Params {
	return r.active.Load()
}

// SelectFromConfig selects the network requested by the testnet and regtest
// switches. Requesting both is an error and leaves the selection unchanged.
func (r *Registry) SelectFromConfig(testnet, regtest bool) error {
	var id Network
	switch {
	case testnet && regtest:
		return ErrAmbiguousNetwork
	case regtest:
		id = Regtest
	case testnet:
		id = Testnet
	default:
		id = Main
	}
	r.SelectNetwork(id)
	return nil
}

// Seal makes the current selection final.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)
}

// Sealed reports whether the selection is final.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// ParamsFor returns the parameter set of the given network. The value is
// shared and must not be modified.
func (r *Registry) ParamsFor(id Network) (*Params, error) {
	p, ok := r.params[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, id)
	}
	return p, nil
}

var defaultRegistry *Registry

func init() {
	r, err := NewRegistry()
	if err != nil {
		// A genesis mismatch means the hard-coded constants are broken
		panic(err)
	}
	defaultRegistry = r
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SelectNetwork selects the active network of the default registry.
func SelectNetwork(id Network) {
	defaultRegistry.SelectNetwork(id)
}

// ActiveParams returns the active parameter set of the default registry. The
// value is shared and must not be modified.
func ActiveParams() *Params {
	return defaultRegistry.ActiveParams()
}

// SelectFromConfig selects the network of the default registry from the
// testnet and regtest switches.
func SelectFromConfig(testnet, regtest bool) error {
	return defaultRegistry.SelectFromConfig(testnet, regtest)
}

// Seal makes the default registry's selection final.
func Seal() {
	defaultRegistry.Seal()
}

// ParamsFor returns the parameter set of the given network from the default
// registry.
func ParamsFor(id Network) (*Params, error) {
	return defaultRegistry.ParamsFor(id)
}
