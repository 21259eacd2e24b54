package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/store/iavl"
	"github.com/iov-one/quorum/x/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// openStore opens the persistent state kept in the home directory and loads
// its latest version. Close the store when done.
func openStore(home string) (iavl.CommitStore, error) {
	cs, err := iavl.NewCommitStore(filepath.Join(home, "data"), "quorum")
	if err != nil {
		return cs, fmt.Errorf("cannot open store: %s", err)
	}
	if err := cs.LoadLatestVersion(); err != nil {
		cs.Close()
		return cs, fmt.Errorf("cannot load store: %s", err)
	}
	return cs, nil
}

// newLogger returns a logger writing to stderr. Only errors are printed
// unless verbose is set.
func newLogger(verbose bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	if verbose {
		return log.NewFilter(logger, log.AllowDebug())
	}
	return log.NewFilter(logger, log.AllowError())
}

// openEngine builds an engine for the committed state. Events are logged and,
// when reg is not nil, counted.
func openEngine(cs iavl.CommitStore, logger log.Logger, reg *prometheus.Registry) (*app.Engine, error) {
	opts := []app.Option{app.WithEmitter(events.LogEmitter{Logger: logger})}
	if reg != nil {
		opts = append(opts, app.WithMetrics(reg))
	}
	engine, err := app.NewEngine(cs, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create engine, was the home directory initialized? %s", err)
	}
	return engine, nil
}

// metricsRegistry returns a registry for the event counters if enabled.
func metricsRegistry(enabled bool) *prometheus.Registry {
	if !enabled {
		return nil
	}
	return prometheus.NewRegistry()
}

// writeMetrics writes every counter value gathered by reg, one per line. A nil
// registry writes nothing.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("cannot gather metrics: %s", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			if _, err := fmt.Fprintf(w, "%s{%s} %v\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()); err != nil {
				return err
			}
		}
	}
	return nil
}

// newContext returns the context the engine is called with. A zero chain id
// means the chain id the engine was deployed on.
func newContext(engine *app.Engine, chainID int64, now time.Time, caller quorum.Address, logger log.Logger) quorum.Context {
	id := engine.ChainID()
	if chainID != 0 {
		id = big.NewInt(chainID)
	}
	ctx := quorum.WithLogger(context.Background(), logger)
	ctx = quorum.WithChainID(ctx, id)
	ctx = quorum.WithBlockTime(ctx, now)
	if !caller.IsZero() {
		ctx = quorum.WithCaller(ctx, caller)
	}
	return ctx
}

// writeJSON writes indented JSON followed by a new line.
func writeJSON(w io.Writer, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize: %s", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", raw)
	return err
}

// readHexLines returns every non empty line of r, hex decoded.
func readHexLines(r io.Reader) ([][]byte, error) {
	var res [][]byte
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		b, err := decodeHex(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("cannot decode line %d: %s", len(res)+1, err)
		}
		res = append(res, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read input: %s", err)
	}
	return res, nil
}

// readHexInput returns the first hex encoded line of r.
func readHexInput(r io.Reader) ([]byte, error) {
	lines, err := readHexLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no input")
	}
	return lines[0], nil
}
