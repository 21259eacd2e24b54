package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum/app"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Initialize the engine state from a genesis file.

The genesis file declares the engine configuration, the owners with the
threshold and executor, and initial ledger balances:

	{
	  "chain_id": "1",
	  "app_state": {
	    "conf": {"quorum": {"self": "0x...", "chain_id": "1", "max_deadline_window": "720h"}},
	    "auth": {"owners": ["0x...", "0x..."], "threshold": 2, "executor": "0x..."},
	    "ledger": [{"address": "0x...", "amount": "1000"}]
	  }
	}

The state can be initialized only once.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		genesisFl = fl.String("genesis", "", "Path to the genesis file.")
	)
	fl.Parse(args)

	if *genesisFl == "" {
		flagDie("genesis file is required")
	}
	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}

	cs, err := openStore(*homeFl)
	if err != nil {
		return err
	}
	defer cs.Close()

	id, err := app.InitChain(cs, gen, app.DefaultInitializer())
	if err != nil {
		return fmt.Errorf("cannot initialize: %+v", err)
	}
	_, err = fmt.Fprintf(output, "version %d, hash %X\n", id.Version, id.Hash)
	return err
}
