// Command ignite is a thin CLI front-end over the ignite key-value store.
// It takes one subcommand and its arguments, runs it against a single
// engine instance rooted at -dir, and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ignite-kv/ignite/pkg/errors"
	"github.com/ignite-kv/ignite/pkg/ignite"
	"github.com/ignite-kv/ignite/pkg/options"
)

func main() {
	dir := flag.String("dir", options.DefaultDirectory, "data directory")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: ignite -dir <path> <set|get|rm> [args...]")
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := ignite.NewInstance(ctx, "ignite-cli", options.WithDirectory(*dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	if err := run(ctx, db, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, db *ignite.Instance, args []string) error {
	switch cmd, rest := args[0], args[1:]; cmd {
	case "set":
		if len(rest) != 2 {
			return fmt.Errorf("usage: set <KEY> <VALUE>")
		}
		return db.Set(ctx, rest[0], rest[1])

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: get <KEY>")
		}
		value, found, err := db.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("Key not found")
			return nil
		}
		fmt.Println(value)
		return nil

	case "rm":
		if len(rest) != 1 {
			return fmt.Errorf("usage: rm <KEY>")
		}
		if err := db.Remove(ctx, rest[0]); err != nil {
			if errors.IsIndexError(err) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return err
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
