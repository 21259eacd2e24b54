package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iov-one/quorum"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *quorum.Address {
	var a quorum.Address
	if defaultVal != "" {
		var err error
		a, err = quorum.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b flagbyte
	if defaultVal != "" {
		if err := b.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&b, name, usage)
	return (*[]byte)(&b)
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := decodeHex(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flBigInt returns a decimal integer flag of any size.
func flBigInt(fl *flag.FlagSet, name, defaultVal, usage string) *big.Int {
	v := new(big.Int)
	if defaultVal != "" {
		if err := (*flagbigint)(v).Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q integer flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagbigint)(v), name, usage)
	return v
}

type flagbigint big.Int

func (i *flagbigint) String() string {
	return (*big.Int)(i).String()
}

func (i *flagbigint) Set(raw string) error {
	if _, ok := (*big.Int)(i).SetString(raw, 10); !ok {
		return fmt.Errorf("invalid decimal integer %q", raw)
	}
	return nil
}

// flTime returns a time flag. Accepted formats are UNIX seconds and
// RFC3339.
func flTime(fl *flag.FlagSet, name string, defaultVal time.Time, usage string) *time.Time {
	t := defaultVal
	fl.Var((*flagtime)(&t), name, usage)
	return &t
}

type flagtime time.Time

func (t *flagtime) String() string {
	if t == nil || time.Time(*t).IsZero() {
		return ""
	}
	return time.Time(*t).UTC().Format(time.RFC3339)
}

func (t *flagtime) Set(raw string) error {
	if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*t = flagtime(time.Unix(unix, 0))
		return nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid time %q, use UNIX seconds or RFC3339", raw)
	}
	*t = flagtime(v)
	return nil
}

func decodeHex(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	return hex.DecodeString(raw)
}
