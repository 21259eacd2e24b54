package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/x/sigs"
)

func cmdBundle(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read hex encoded signatures, one per line, and print a single hex encoded
signature bundle.

Signatures are ordered by the address of their signer, which is the order
required by the engine. The digest is needed to recover the signers.
`)
		fl.PrintDefaults()
	}
	var (
		digestFl = flHex(fl, "digest", "", "Hex encoded digest that was signed.")
	)
	fl.Parse(args)

	if len(*digestFl) != crypto.DigestLength {
		return fmt.Errorf("invalid digest length: %d", len(*digestFl))
	}
	var digest [crypto.DigestLength]byte
	copy(digest[:], *digestFl)

	signatures, err := readHexLines(input)
	if err != nil {
		return err
	}
	bundle, err := sigs.NewBundle(crypto.Secp256k1Recoverer{}, digest, signatures...)
	if err != nil {
		return fmt.Errorf("cannot create bundle: %s", err)
	}
	_, err = fmt.Fprintf(output, "%x\n", bundle)
	return err
}
