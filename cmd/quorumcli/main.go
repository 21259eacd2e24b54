package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/quorum"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is an independent runable that is taking input and output
// being stdin and stdout. Given args are the command line arguments, without
// the program name, that should be parsed using the flag package.
//
// Keep every command small. Commands are combined using a unix pipe. For
// example, a transfer approved by two owners is built and submitted with:
//
//   $ quorumcli transfer-hash -to $DEST -value 10 -deadline $DEADLINE > digest
//   $ quorumcli sign -key alice.key < digest >> signatures
//   $ quorumcli sign -key bob.key < digest >> signatures
//   $ quorumcli bundle -digest $(cat digest) < signatures \
//       | quorumcli execute -to $DEST -value 10 -deadline $DEADLINE
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"admin":         cmdAdmin,
	"admin-hash":    cmdAdminHash,
	"bundle":        cmdBundle,
	"deposit":       cmdDeposit,
	"execute":       cmdExecute,
	"init":          cmdInit,
	"keyaddr":       cmdKeyaddr,
	"keygen":        cmdKeygen,
	"query":         cmdQuery,
	"sign":          cmdSign,
	"transfer-hash": cmdTransferHash,
	"version":       cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the quorum authorization engine.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, quorum.Version())
	return err
}
