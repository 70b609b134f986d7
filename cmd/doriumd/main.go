package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/apeunit/dorium-contracts/app"
	"github.com/apeunit/dorium-contracts/store/tmdb"
	"github.com/apeunit/dorium-contracts/x/escrow"
	"github.com/apeunit/dorium-contracts/x/exchange"
)

const usage = `doriumd - dorium contracts host tool

Usage:
  doriumd init -home <dir> -genesis <file>   initialize the database
  doriumd ls   -home <dir>                   list all escrow ids
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(logger, os.Args[2:])
	case "ls":
		err = runList(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", "cmd", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func openStore(home string) (tmdb.Store, error) {
	return tmdb.NewGoLevelDBStore("dorium", home)
}

func runInit(logger log.Logger, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	home := fs.String("home", ".dorium", "directory holding the database")
	genesisPath := fs.String("genesis", "genesis.json", "genesis file to apply")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen, err := app.LoadGenesis(*genesisPath)
	if err != nil {
		return err
	}

	db, err := openStore(*home)
	if err != nil {
		return err
	}
	defer db.Close()

	d := app.NewDispatcher(db, app.NewRouter(), app.NewQueryRouter(), logger)
	ini := app.ChainInitializers(
		exchange.Initializer{},
	)
	if err := d.InitGenesis(gen.AppOptions, ini); err != nil {
		return err
	}
	logger.Info("initialized", "chain_id", gen.ChainID, "home", *home)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	home := fs.String("home", ".dorium", "directory holding the database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openStore(*home)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, id := range escrow.NewQuerier().ListIDs(db) {
		fmt.Printf("%s\n", id)
	}
	return nil
}
