package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
)

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the committed engine state: owners, threshold, executor, nonce, the
engine balance and the domain separator.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		chainFl = fl.Int64("chain-id", conf.ChainID,
			"Live chain id. Zero means the deployment chain id. You can use QUORUMCLI_CHAIN_ID environment variable to set it.")
		ownerFl = flAddress(fl, "owner", "", "If set, only print whether this address is an owner.")
	)
	fl.Parse(args)

	cs, err := openStore(*homeFl)
	if err != nil {
		return err
	}
	defer cs.Close()
	logger := newLogger(false)
	engine, err := openEngine(cs, logger, nil)
	if err != nil {
		return err
	}

	if !ownerFl.IsZero() {
		ok, err := engine.IsOwner(cs.Adapter(), *ownerFl)
		if err != nil {
			return fmt.Errorf("cannot query: %s", err)
		}
		_, err = fmt.Fprintln(output, ok)
		return err
	}

	info, err := engine.Info(cs.Adapter())
	if err != nil {
		return fmt.Errorf("cannot query: %s", err)
	}
	ctx := newContext(engine, *chainFl, time.Now(), quorum.ZeroAddress, logger)
	return writeJSON(output, struct {
		Self            quorum.Address `json:"self"`
		ChainID         string         `json:"chain_id"`
		DomainSeparator string         `json:"domain_separator"`
		*app.Info
	}{
		Self:            engine.Self(),
		ChainID:         engine.ChainID().String(),
		DomainSeparator: engine.DomainSeparator(ctx).Hex(),
		Info:            info,
	})
}
