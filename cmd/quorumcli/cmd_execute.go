package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
)

func cmdExecute(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Execute a transfer approved by the owners and commit the result.

The signature bundle is read from the input unless given with the -sigs
flag. Use bundle to create it. The caller must be the executor.

By default a failing call consumes the nonce and the result reports a
failure. With -strict a failing call fails the whole operation.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		chainFl = fl.Int64("chain-id", conf.ChainID,
			"Live chain id. Zero means the deployment chain id. You can use QUORUMCLI_CHAIN_ID environment variable to set it.")
		callerFl = flAddress(fl, "caller", conf.Caller,
			"Address submitting the transfer. You can use QUORUMCLI_CALLER environment variable to set it.")
		sigsFl    = flHex(fl, "sigs", "", "Hex encoded signature bundle. Read from the input if not set.")
		strictFl  = fl.Bool("strict", false, "Fail the operation if the call fails.")
		nowFl     = flTime(fl, "now", time.Now(), "Time deadlines are checked against.")
		verboseFl = fl.Bool("v", false, "Log debug information.")
		metricsFl = fl.Bool("metrics", false, "Print event counters after the result.")
		tr        = transferFlags(fl)
	)
	fl.Parse(args)

	req, err := tr.request()
	if err != nil {
		return err
	}
	req.Signatures, err = signatures(input, *sigsFl)
	if err != nil {
		return err
	}

	cs, err := openStore(*homeFl)
	if err != nil {
		return err
	}
	defer cs.Close()
	logger := newLogger(*verboseFl)
	reg := metricsRegistry(*metricsFl)
	engine, err := openEngine(cs, logger, reg)
	if err != nil {
		return err
	}
	ctx := newContext(engine, *chainFl, *nowFl, *callerFl, logger)

	run := engine.Execute
	if *strictFl {
		run = engine.ExecuteStrict
	}
	var res executeResult
	_, err = app.Apply(cs, func(db quorum.CacheableKVStore) error {
		out, err := run(ctx, db, req)
		if err != nil {
			return err
		}
		res = executeResult{
			Nonce:      out.Nonce,
			Success:    out.Success,
			ReturnData: hex.EncodeToString(out.ReturnData),
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cannot execute: %s", err)
	}
	if err := writeJSON(output, res); err != nil {
		return err
	}
	return writeMetrics(output, reg)
}

type executeResult struct {
	Nonce      uint64 `json:"nonce"`
	Success    bool   `json:"success"`
	ReturnData string `json:"return_data,omitempty"`
}

func cmdAdmin(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Apply an admin action approved by the owners and commit the result.

The signature bundle is read from the input unless given with the -sigs
flag. Anybody may submit an admin action.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		chainFl = fl.Int64("chain-id", conf.ChainID,
			"Live chain id. Zero means the deployment chain id. You can use QUORUMCLI_CHAIN_ID environment variable to set it.")
		sigsFl    = flHex(fl, "sigs", "", "Hex encoded signature bundle. Read from the input if not set.")
		verboseFl = fl.Bool("v", false, "Log debug information.")
		metricsFl = fl.Bool("metrics", false, "Print event counters after the result.")
		ad        = adminFlags(fl)
	)
	fl.Parse(args)

	req := ad.request()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid admin action: %s", err)
	}
	bundle, err := signatures(input, *sigsFl)
	if err != nil {
		return err
	}

	cs, err := openStore(*homeFl)
	if err != nil {
		return err
	}
	defer cs.Close()
	logger := newLogger(*verboseFl)
	reg := metricsRegistry(*metricsFl)
	engine, err := openEngine(cs, logger, reg)
	if err != nil {
		return err
	}
	ctx := newContext(engine, *chainFl, time.Now(), quorum.ZeroAddress, logger)

	var nonce uint64
	_, err = app.Apply(cs, func(db quorum.CacheableKVStore) error {
		var err error
		nonce, err = engine.Admin(ctx, db, req, bundle)
		return err
	})
	if err != nil {
		return fmt.Errorf("cannot apply %s: %s", req.Action, err)
	}
	err = writeJSON(output, struct {
		Action string `json:"action"`
		Nonce  uint64 `json:"nonce"`
	}{Action: req.Action, Nonce: nonce})
	if err != nil {
		return err
	}
	return writeMetrics(output, reg)
}

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Credit value sent to the engine and commit the result.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		fromFl    = flAddress(fl, "from", conf.Caller, "Address the value is sent from.")
		valueFl   = flBigInt(fl, "value", "0", "Value to deposit, in the smallest unit.")
		metricsFl = fl.Bool("metrics", false, "Print event counters after the balance.")
	)
	fl.Parse(args)

	cs, err := openStore(*homeFl)
	if err != nil {
		return err
	}
	defer cs.Close()
	logger := newLogger(false)
	reg := metricsRegistry(*metricsFl)
	engine, err := openEngine(cs, logger, reg)
	if err != nil {
		return err
	}
	ctx := newContext(engine, 0, time.Now(), *fromFl, logger)

	_, err = app.Apply(cs, func(db quorum.CacheableKVStore) error {
		return engine.Receive(ctx, db, *fromFl, valueFl)
	})
	if err != nil {
		return fmt.Errorf("cannot deposit: %s", err)
	}
	balance, err := engine.Balance(cs.Adapter())
	if err != nil {
		return fmt.Errorf("cannot read balance: %s", err)
	}
	if _, err := fmt.Fprintln(output, balance); err != nil {
		return err
	}
	return writeMetrics(output, reg)
}

// signatures returns the bundle given by flag, or the one read from input.
func signatures(input io.Reader, fromFlag []byte) ([]byte, error) {
	if len(fromFlag) != 0 {
		return fromFlag, nil
	}
	b, err := readHexInput(input)
	if err != nil {
		return nil, fmt.Errorf("cannot read signature bundle: %s", err)
	}
	return b, nil
}
