// Command todoctl runs maintenance operations directly against the todo
// service database. It reads the same environment as the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/todo/internal/todo/app"
)

const usage = `usage: todoctl <command> [flags]

commands:
  list                          list every todo
  purge -text TEXT              delete every todo with this text
  delete-one -text TEXT         delete the first todo with this text
  delete -id ID                 delete a todo by id and print it
  rename -from TEXT -to TEXT    rename every todo with the given text
  passwd -email EMAIL -password PASSWORD
                                set a password and end all of its sessions
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "todoctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return errUsage
	}

	cfg, err := app.LoadConfig(".env")
	if err != nil {
		return err
	}
	cfg.LogLevel = "warn"

	core, err := app.OpenCore(cfg, app.NewLogger(cfg, "todoctl"))
	if err != nil {
		return err
	}
	defer core.Close()

	return cmd(ctx, core, args[1:], stdout, stderr)
}
