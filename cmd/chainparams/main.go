// Copyright 2023 Blink Labs, LLC.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/blinklabs-io/curiumd/internal/address"
	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/blinklabs-io/curiumd/internal/logging"
	"gopkg.in/yaml.v2"
)

type cmdlineFlags struct {
	network string
	verify  bool
	solve   bool
	time    int64
	bits    uint
}

type prefixSummary struct {
	PubKeyHash         int    `yaml:"pubKeyHash"`
	ScriptHash         int    `yaml:"scriptHash"`
	PrivateKey         int    `yaml:"privateKey"`
	ExtendedPublicKey  string `yaml:"extendedPublicKey"`
	ExtendedPrivateKey string `yaml:"extendedPrivateKey"`
	CoinType           string `yaml:"coinType"`
	CoinTypePath       string `yaml:"coinTypePath"`
}

type genesisSummary struct {
	Hash       string `yaml:"hash"`
	MerkleRoot string `yaml:"merkleRoot"`
	Time       int64  `yaml:"time"`
	Bits       string `yaml:"bits"`
	Nonce      uint32 `yaml:"nonce"`
	Version    int32  `yaml:"version"`
	PayoutAddr string `yaml:"payoutAddress"`
}

type paramsSummary struct {
	Network                string         `yaml:"network"`
	Magic                  string         `yaml:"magic"`
	DefaultPort            uint16         `yaml:"defaultPort"`
	RPCPort                uint16         `yaml:"rpcPort"`
	PowLimitBits           string         `yaml:"powLimitBits"`
	SubsidyHalvingInterval int32          `yaml:"subsidyHalvingInterval"`
	RequireRPCPassword     bool           `yaml:"requireRPCPassword"`
	DataDir                string         `yaml:"dataDir"`
	AlertPubKey            string         `yaml:"alertPubKey"`
	DNSSeeds               []string       `yaml:"dnsSeeds"`
	FixedSeeds             []string       `yaml:"fixedSeeds"`
	Prefixes               prefixSummary  `yaml:"prefixes"`
	Genesis                genesisSummary `yaml:"genesis"`
}

func summarize(params *chaincfg.Params) paramsSummary {
	header := params.GenesisBlock.Header
	ret := paramsSummary{
		Network:                params.Name,
		Magic:                  hex.EncodeToString(params.MessageStart[:]),
		DefaultPort:            params.DefaultPort,
		RPCPort:                params.RPCPort,
		PowLimitBits:           fmt.Sprintf("0x%08x", params.PowLimitBits),
		SubsidyHalvingInterval: params.SubsidyHalvingInterval,
		RequireRPCPassword:     params.RequireRPCPassword,
		DataDir:                params.DataDir,
		AlertPubKey:            hex.EncodeToString(params.AlertPubKey),
		Prefixes: prefixSummary{
			PubKeyHash:         int(params.Prefixes.PubKeyHashAddrID),
			ScriptHash:         int(params.Prefixes.ScriptHashAddrID),
			PrivateKey:         int(params.Prefixes.PrivateKeyID),
			ExtendedPublicKey:  hex.EncodeToString(params.VersionBytes(chaincfg.ExtendedPublicKey)),
			ExtendedPrivateKey: hex.EncodeToString(params.VersionBytes(chaincfg.ExtendedPrivateKey)),
			CoinType:           hex.EncodeToString(params.VersionBytes(chaincfg.CoinType)),
			CoinTypePath:       address.CoinTypePath(params),
		},
		Genesis: genesisSummary{
			Hash:       params.GenesisHash.String(),
			MerkleRoot: params.GenesisMerkleRoot().String(),
			Time:       header.Timestamp.Unix(),
			Bits:       fmt.Sprintf("0x%08x", header.Bits),
			Nonce:      header.Nonce,
			Version:    header.Version,
			PayoutAddr: address.EncodePubKeyHash(params, params.Genesis.PayoutPubKey),
		},
	}
	for _, seed := range params.DNSSeeds {
		ret.DNSSeeds = append(ret.DNSSeeds, seed.String())
	}
	for _, addr := range params.FixedSeeds {
		ret.FixedSeeds = append(
			ret.FixedSeeds,
			fmt.Sprintf("%s:%d", addr.IP, addr.Port),
		)
	}
	return ret
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var opts cmdlineFlags
	fs := flag.NewFlagSet("chainparams", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.network, "network", "main", "network to show (main, testnet, regtest)")
	fs.BoolVar(&opts.verify, "verify", false, "rebuild and check the genesis block of every network")
	fs.BoolVar(&opts.solve, "solve", false, "search a genesis nonce for the network's coinbase")
	fs.Int64Var(&opts.time, "time", 0, "genesis time (unix seconds) for -solve, defaults to now")
	fs.UintVar(&opts.bits, "bits", 0, "genesis bits for -solve, defaults to the network's genesis bits")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.verify {
		return verifyAll(out)
	}

	id, err := chaincfg.ParseNetwork(opts.network)
	if err != nil {
		return err
	}
	params, err := chaincfg.ParamsFor(id)
	if err != nil {
		return err
	}

	if opts.solve {
		return solve(ctx, params, opts, out)
	}

	data, err := yaml.Marshal(summarize(params))
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func verifyAll(out io.Writer) error {
	logger := logging.GetLogger()
	var errs []error
	for _, id := range chaincfg.Networks {
		params, err := chaincfg.Build(id)
		if err != nil {
			logger.Errorf("%s: %s", id, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "%s: ok %s\n", params.Name, params.GenesisHash)
	}
	return errors.Join(errs...)
}

func solve(
	ctx context.Context,
	params *chaincfg.Params,
	opts cmdlineFlags,
	out io.Writer,
) error {
	genesis := params.Genesis
	genesis.Time = time.Now()
	if opts.time > 0 {
		genesis.Time = time.Unix(opts.time, 0)
	}
	if opts.bits > 0 {
		genesis.Bits = uint32(opts.bits)
	}
	genesis.Nonce = 0
	start := time.Now()
	nonce, hash, err := chaincfg.SolveGenesis(ctx, genesis, params.PowLimit)
	if err != nil {
		return err
	}
	genesis.Nonce = nonce
	block, err := chaincfg.BuildGenesisBlock(genesis)
	if err != nil {
		return err
	}
	logging.GetLogger().Infof("solved genesis in %s", time.Since(start))
	fmt.Fprintf(out, "time: %d\n", genesis.Time.Unix())
	fmt.Fprintf(out, "bits: 0x%08x\n", genesis.Bits)
	fmt.Fprintf(out, "nonce: %d\n", nonce)
	fmt.Fprintf(out, "hash: %s\n", hash)
	fmt.Fprintf(out, "merkleRoot: %s\n", block.Header.MerkleRoot)
	return nil
}

func main() {
	// Configure logging
	logging.Setup()
	logger := logging.GetLogger()
	// Sync logger on exit
	defer func() {
		if err := logger.Sync(); err != nil {
			// We don't actually care about the error here, but we have to do something
			// to appease the linter
			return
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Errorf("chainparams: %s", err)
		stop()
		os.Exit(1)
	}
}
