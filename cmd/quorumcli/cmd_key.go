package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/quorum/crypto"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new secp256k1 private key.

When successful a new file containing the hex encoded private key is created
and the address of the key is printed. This command fails if the private key
file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", conf.Key,
			"Path to the private key file. You can use QUORUMCLI_KEY environment variable to set it.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	key, err := crypto.GenPrivKeySecp256k1()
	if err != nil {
		return fmt.Errorf("cannot generate secp256k1 key: %s", err)
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fmt.Fprintln(fd, key.Hex()); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}
	_, err = fmt.Fprintln(output, key.Address())
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", conf.Key,
			"Path to the private key file. You can use QUORUMCLI_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := readKey(*keyPathFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, key.Address())
	return err
}

func cmdSign(input io.Reader, output io.Writer, args []string) error {
	conf := mustLoadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a hex encoded digest from the input and print a hex encoded 65 byte
signature of it.

Use transfer-hash or admin-hash to create the digest.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", conf.Key,
			"Path to the private key file. You can use QUORUMCLI_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := readKey(*keyPathFl)
	if err != nil {
		return err
	}
	raw, err := readHexInput(input)
	if err != nil {
		return err
	}
	if len(raw) != crypto.DigestLength {
		return fmt.Errorf("invalid digest length: %d", len(raw))
	}
	var digest [crypto.DigestLength]byte
	copy(digest[:], raw)

	sig, err := key.Sign(digest)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	_, err = fmt.Fprintf(output, "%x\n", sig)
	return err
}

func readKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	key, err := crypto.PrivateKeyFromHex(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %s", err)
	}
	return key, nil
}
