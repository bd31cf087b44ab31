// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/GLEECBTC/komodo-daemon/blockindex"
	"github.com/GLEECBTC/komodo-daemon/chaincfg"
	"github.com/GLEECBTC/komodo-daemon/checkpoints"
	"github.com/GLEECBTC/komodo-daemon/wallet"
)

const (
	// checkpointDbName is the directory under the data directory holding
	// the sync checkpoint store.
	checkpointDbName = "syncchkpt"
)

var cfg *config

// komodoMain is the real main function for komodod.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func komodoMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	kmddLog.Infof("Version %s", version())

	chainParams := cfg.activeNetParams()
	identity := chaincfg.NewChainIdentity(cfg.AssetChain)
	registry := checkpoints.DefaultRegistry()
	resolver := checkpoints.NewResolver(registry, identity, cfg.TestNet)

	// Open the sync checkpoint store and bootstrap the checkpoint state
	// before anything consults it.  The wallet is not loaded yet; the
	// master key is provisioned afterwards.
	store, err := checkpoints.OpenLevelStore(
		filepath.Join(cfg.DataDir, checkpointDbName))
	if err != nil {
		kmddLog.Errorf("%v", err)
		return err
	}
	defer store.Close()

	index := blockindex.New(chainParams.GenesisHash)
	manager, err := checkpoints.New(&checkpoints.Config{
		ChainParams: &chainParams,
		Resolver:    resolver,
		Store:       store,
		Index:       index,
	})
	if err != nil {
		kmddLog.Errorf("%v", err)
		return err
	}

	params, err := resolver.Params()
	switch {
	case err == nil:
		if err := manager.OpenAtStartup(params); err != nil {
			kmddLog.Errorf("Failed to open sync checkpoint: %v", err)
			return err
		}
	case checkpoints.IsErrorKind(err, checkpoints.ErrNotConfigured):
		kmddLog.Infof("Sync checkpoints are not configured for chain "+
			"%s", identity)
	default:
		kmddLog.Errorf("Failed to resolve sync checkpoint params: %v", err)
		return err
	}

	// Load the key store and hand it to the checkpoint manager so the
	// master key can be picked up if this node holds it.
	keyStore := wallet.New(filepath.Join(cfg.DataDir, defaultKeyStoreFilename))
	if err := keyStore.Load(); err != nil {
		kmddLog.Errorf("Failed to load the key store: %v", err)
		return err
	}
	manager.SetWallet(keyStore)

	if err == nil {
		if err := manager.TryInitSyncCheckpoint(params); err != nil {
			kmddLog.Errorf("Failed to init sync checkpoint: %v", err)
			return err
		}
	}

	// Block until an interrupt signal is received.  Block download and
	// checkpoint relay run in their own subsystems and consult the
	// manager through the resolver.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	kmddLog.Info("Shutdown complete")
	return nil
}

func main() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Work around defer not working after os.Exit()
	if err := komodoMain(); err != nil {
		os.Exit(1)
	}
}
