// Copyright 2024 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/blinklabs-io/curiumd/internal/config"
	"github.com/blinklabs-io/curiumd/internal/logging"
	"github.com/blinklabs-io/curiumd/internal/metrics"
	"github.com/blinklabs-io/curiumd/internal/seeds"
	"github.com/blinklabs-io/curiumd/internal/state"
	"github.com/blinklabs-io/curiumd/internal/version"
)

const programName = "curiumd"

var cmdlineFlags struct {
	configFile string
	testnet    bool
	regtest    bool
}

// applyNetworkFlags copies the network switches that were given on the
// command line over the configured values.
func applyNetworkFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "testnet":
			cfg.Network.Testnet = cmdlineFlags.testnet
		case "regtest":
			cfg.Network.Regtest = cmdlineFlags.regtest
		}
	})
}

func main() {
	flag.StringVar(
		&cmdlineFlags.configFile,
		"config",
		"",
		"path to config file to load",
	)
	flag.BoolVar(
		&cmdlineFlags.testnet,
		"testnet",
		false,
		"use the test network",
	)
	flag.BoolVar(
		&cmdlineFlags.regtest,
		"regtest",
		false,
		"use the regression test network",
	)
	flag.Parse()

	// Load config
	cfg, err := config.Load(cmdlineFlags.configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}
	applyNetworkFlags(cfg, flag.CommandLine)

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

	logger.Info(
		fmt.Sprintf("%s %s started", programName, version.GetVersionString()),
	)

	// Select network
	if err := chaincfg.SelectFromConfig(cfg.Network.Testnet, cfg.Network.Regtest); err != nil {
		logger.Fatalf("failed to select network: %s", err)
	}
	chaincfg.Seal()
	params := chaincfg.ActiveParams()
	logger.Infow(
		"selected network",
		"network", params.Name,
		"genesis", params.GenesisHash.String(),
		"port", params.DefaultPort,
		"userAgent", version.GetUserAgent(programName, params.Name),
	)

	m := metrics.New()
	if !params.GenesisVerified {
		logger.Fatalf("genesis of %s was not verified", params.Name)
	}
	m.ObserveGenesis(params)
	m.SetActiveNetwork(params)

	// Load state
	if err := state.GetState().Load(params.DataDir); err != nil {
		logger.Fatalf("failed to load state: %s", err)
	}
	defer func() {
		if err := state.GetState().Close(); err != nil {
			logger.Errorf("failed to close state: %s", err)
		}
	}()
	if err := state.GetState().CheckGenesis(params.Name, *params.GenesisHash); err != nil {
		logger.Fatalf("failed to check state: %s", err)
	}

	// Start debug listener
	if cfg.Debug.ListenPort > 0 {
		logger.Infof(
			"starting debug listener on %s:%d",
			cfg.Debug.ListenAddress,
			cfg.Debug.ListenPort,
		)
		go func() {
			err := http.ListenAndServe(
				fmt.Sprintf(
					"%s:%d",
					cfg.Debug.ListenAddress,
					cfg.Debug.ListenPort,
				),
				nil,
			)
			if err != nil {
				logger.Fatalf("failed to start debug listener: %s", err)
			}
		}()
	}

	// Start metrics listener
	if cfg.Metrics.ListenPort > 0 {
		logger.Infof(
			"starting metrics listener on %s:%d",
			cfg.Metrics.ListenAddress,
			cfg.Metrics.ListenPort,
		)
		go func() {
			err := m.ListenAndServe(
				cfg.Metrics.ListenAddress,
				cfg.Metrics.ListenPort,
			)
			if err != nil {
				logger.Fatalf("failed to start metrics listener: %s", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	// Discover bootstrap peers
	if cfg.Seeds.Enabled {
		resolver := seeds.NewResolver(cfg.Seeds.Nameservers, cfg.Seeds.Timeout)
		addrs, err := resolver.Bootstrap(ctx, params)
		if err != nil {
			logger.Warnf("peer discovery failed: %s", err)
		} else {
			logger.Infof("found %d bootstrap peers", len(addrs))
			for _, addr := range addrs {
				logger.Debugf("bootstrap peer: %s:%d", addr.IP, addr.Port)
			}
		}
	}

	// Wait for shutdown
	<-ctx.Done()
	logger.Info("shutting down")
}
