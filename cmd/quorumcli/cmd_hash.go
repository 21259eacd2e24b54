package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x/admin"
	"github.com/iov-one/quorum/x/execute"
)

func cmdTransferHash(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the hex encoded digest that owners must sign to approve a transfer.

The digest commits to the current nonce, so it must be signed and executed
before any other operation is applied.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		chainFl = fl.Int64("chain-id", conf.ChainID,
			"Live chain id. Zero means the deployment chain id. You can use QUORUMCLI_CHAIN_ID environment variable to set it.")
		tr = transferFlags(fl)
	)
	fl.Parse(args)

	req, err := tr.request()
	if err != nil {
		return err
	}

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

	ctx := newContext(engine, *chainFl, time.Now(), quorum.ZeroAddress, logger)
	digest, err := engine.TransferDigest(ctx, cs.Adapter(), req)
	if err != nil {
		return fmt.Errorf("cannot compute digest: %+v", err)
	}
	_, err = fmt.Fprintln(output, digest.Hex())
	return err
}

func cmdAdminHash(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the hex encoded digest that owners must sign to approve an admin
action.

Supported actions are SET_EXECUTOR, ADD_OWNER, REMOVE_OWNER, SET_THRESHOLD
and CANCEL_NONCE.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", conf.Home,
			"Directory where the engine state is kept. You can use QUORUMCLI_HOME environment variable to set it.")
		chainFl = fl.Int64("chain-id", conf.ChainID,
			"Live chain id. Zero means the deployment chain id. You can use QUORUMCLI_CHAIN_ID environment variable to set it.")
		ad = adminFlags(fl)
	)
	fl.Parse(args)

	req := ad.request()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid admin action: %s", err)
	}

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

	ctx := newContext(engine, *chainFl, time.Now(), quorum.ZeroAddress, logger)
	digest, err := engine.AdminDigest(ctx, cs.Adapter(), req)
	if err != nil {
		return fmt.Errorf("cannot compute digest: %+v", err)
	}
	_, err = fmt.Fprintln(output, digest.Hex())
	return err
}

type transferFlagSet struct {
	to       *quorum.Address
	value    *big.Int
	data     *[]byte
	deadline *time.Time
}

func transferFlags(fl *flag.FlagSet) transferFlagSet {
	return transferFlagSet{
		to:       flAddress(fl, "to", "", "Destination address."),
		value:    flBigInt(fl, "value", "0", "Value to transfer, in the smallest unit."),
		data:     flHex(fl, "data", "", "Hex encoded call data."),
		deadline: flTime(fl, "deadline", time.Time{}, "Deadline as UNIX seconds or RFC3339."),
	}
}

func (f transferFlagSet) request() (execute.Request, error) {
	if f.to.IsZero() {
		return execute.Request{}, fmt.Errorf("destination address is required")
	}
	if f.deadline.IsZero() {
		return execute.Request{}, fmt.Errorf("deadline is required")
	}
	return execute.Request{
		To:       *f.to,
		Value:    f.value,
		Data:     *f.data,
		Deadline: quorum.AsUnixTime(*f.deadline),
	}, nil
}

type adminFlagSet struct {
	action *string
	target *quorum.Address
	value  *uint64
}

func adminFlags(fl *flag.FlagSet) adminFlagSet {
	return adminFlagSet{
		action: fl.String("action", "", "Admin action name."),
		target: flAddress(fl, "target", "", "Target address, the executor or the owner."),
		value:  fl.Uint64("value", 0, "Action value, the new threshold."),
	}
}

func (f adminFlagSet) request() admin.Request {
	return admin.Request{
		Action: *f.action,
		Target: *f.target,
		Value:  *f.value,
	}
}

// flagDie reports an invalid usage and terminates the process.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, fmt.Sprintf(description, args...))
	os.Exit(2)
}
