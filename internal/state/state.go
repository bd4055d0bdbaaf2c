// Copyright 2023 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package state

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/blinklabs-io/curiumd/internal/config"
	"github.com/blinklabs-io/curiumd/internal/logging"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dgraph-io/badger/v4"
)

const (
	genesisHashKey = "genesis_hash"
	networkNameKey = "network_name"
)

// ErrNetworkMismatch is returned when a data directory was initialized for a
// different genesis block.
var ErrNetworkMismatch = errors.New("data directory belongs to another network")

type State struct {
	db *badger.DB
}

var globalState = &State{}

// Load opens the database for a network. dataDir is the network's data
// subdirectory and is placed under the configured state directory.
func (s *State) Load(dataDir string) error {
	cfg := config.GetConfig()
	badgerOpts := badger.DefaultOptions(
		filepath.Join(cfg.State.Directory, dataDir),
	).
		WithLogger(NewBadgerLogger()).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	return s.open(badgerOpts)
}

// LoadInMemory opens a database that is never written to disk.
func (s *State) LoadInMemory() error {
	badgerOpts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(NewBadgerLogger()).
		WithLoggingLevel(badger.WARNING)
	return s.open(badgerOpts)
}

func (s *State) open(badgerOpts badger.Options) error {
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *State) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// CheckGenesis records the genesis hash of the network on first use and
// afterwards rejects any other genesis hash.
func (s *State) CheckGenesis(network string, hash chainhash.Hash) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(genesisHashKey))
		if err != nil {
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if err := txn.Set([]byte(genesisHashKey), hash[:]); err != nil {
				return err
			}
			return txn.Set([]byte(networkNameKey), []byte(network))
		}
		var stored chainhash.Hash
		err = item.Value(func(v []byte) error {
			return stored.SetBytes(v)
		})
		if err != nil {
			return err
		}
		if stored == hash {
			return nil
		}
		storedNetwork := "unknown"
		if nameItem, err := txn.Get([]byte(networkNameKey)); err == nil {
			if v, err := nameItem.ValueCopy(nil); err == nil {
				storedNetwork = string(v)
			}
		}
		return fmt.Errorf(
			"%w: directory was created for %s (genesis %s), selected %s (genesis %s)",
			ErrNetworkMismatch,
			storedNetwork,
			stored,
			network,
			hash,
		)
	})
}

// Genesis returns the recorded network name and genesis hash. The final
// return value is false if nothing has been recorded yet.
func (s *State) Genesis() (string, chainhash.Hash, bool, error) {
	var network string
	var hash chainhash.Hash
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(genesisHashKey))
		if err != nil {
			return err
		}
		if err := item.Value(func(v []byte) error {
			return hash.SetBytes(v)
		}); err != nil {
			return err
		}
		nameItem, err := txn.Get([]byte(networkNameKey))
		if err != nil {
			return err
		}
		v, err := nameItem.ValueCopy(nil)
		if err != nil {
			return err
		}
		network = string(v)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", chainhash.Hash{}, false, nil
	}
	if err != nil {
		return "", chainhash.Hash{}, false, err
	}
	return network, hash, true, nil
}

func GetState() *State {
	return globalState
}

// BadgerLogger is a wrapper type to give our logger the expected interface
type BadgerLogger struct {
	*logging.Logger
}

func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{
		Logger: logging.GetLogger(),
	}
}

func (b *BadgerLogger) Warningf(msg string, args ...any) {
	b.Warnf(msg, args...)
}
