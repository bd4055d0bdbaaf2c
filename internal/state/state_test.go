// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package state_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/blinklabs-io/curiumd/internal/config"
	"github.com/blinklabs-io/curiumd/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	s := &state.State{}
	if err := s.LoadInMemory(); err != nil {
		t.Fatalf("unexpected error opening state: %s", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestCheckGenesis(t *testing.T) {
	mainParams, err := chaincfg.ParamsFor(chaincfg.Main)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	testParams, err := chaincfg.ParamsFor(chaincfg.Testnet)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	s := newTestState(t)
	if _, _, ok, err := s.Genesis(); err != nil || ok {
		t.Fatalf("expected empty state, got ok=%v err=%v", ok, err)
	}
	// First use records the genesis
	if err := s.CheckGenesis(mainParams.Name, *mainParams.GenesisHash); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Same network is accepted again
	if err := s.CheckGenesis(mainParams.Name, *mainParams.GenesisHash); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = s.CheckGenesis(testParams.Name, *testParams.GenesisHash)
	if !errors.Is(err, state.ErrNetworkMismatch) {
		t.Fatalf("got error %v, wanted %v", err, state.ErrNetworkMismatch)
	}
	network, hash, ok, err := s.Genesis()
	if err != nil || !ok {
		t.Fatalf("expected recorded genesis, got ok=%v err=%v", ok, err)
	}
	if network != "main" || hash != *mainParams.GenesisHash {
		t.Fatalf("got %s/%s, wanted main/%s", network, hash, mainParams.GenesisHash)
	}
}

func TestLoadPerNetworkDirectory(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	config.GetConfig().State.Directory = t.TempDir()
	regParams, err := chaincfg.ParamsFor(chaincfg.Regtest)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	s := &state.State{}
	if err := s.Load(regParams.DataDir); err != nil {
		t.Fatalf("unexpected error opening state: %s", err)
	}
	if err := s.CheckGenesis(regParams.Name, *regParams.GenesisHash); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error closing state: %s", err)
	}
	// Reopening keeps the recorded genesis
	if err := s.Load(regParams.DataDir); err != nil {
		t.Fatalf("unexpected error reopening state: %s", err)
	}
	defer s.Close()
	network, hash, ok, err := s.Genesis()
	if err != nil || !ok || network != "regtest" || hash != *regParams.GenesisHash {
		t.Fatalf("unexpected recorded genesis: %s %s %v %v", network, hash, ok, err)
	}
}
