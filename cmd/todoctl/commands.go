package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
)

type command func(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error

var commands = map[string]command{
	"list":       listCmd,
	"purge":      purgeCmd,
	"delete-one": deleteOneCmd,
	"delete":     deleteCmd,
	"rename":     renameCmd,
	"passwd":     passwdCmd,
}

// parseFlags parses args into fs and checks that every name in required was
// given a non-empty value.
func parseFlags(fs *flag.FlagSet, args []string, stderr io.Writer, required ...string) error {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	for _, name := range required {
		if fs.Lookup(name).Value.String() == "" {
			fmt.Fprintf(stderr, "%s: -%s is required\n", fs.Name(), name)
			fs.PrintDefaults()
			return errUsage
		}
	}
	return nil
}

func printTodos(w io.Writer, todos ...domain.Todo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPLETED\tCOMPLETED AT\tCREATOR\tTEXT")
	for _, t := range todos {
		at := "-"
		if t.CompletedAt != nil {
			at = t.CompletedAt.UTC().Format(time.RFC3339)
		}
		creator := t.CreatorID
		if creator == "" {
			creator = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, strconv.FormatBool(t.Completed), at, creator, t.Text)
	}
	return tw.Flush()
}

func listCmd(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	creator := fs.String("creator", "", "only todos created by this user id")
	if err := parseFlags(fs, args, stderr); err != nil {
		return err
	}

	todos, err := core.Todos.List(ctx, service.ListFilter{CreatorID: *creator})
	if err != nil {
		return err
	}
	return printTodos(stdout, todos...)
}

func purgeCmd(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("purge", flag.ContinueOnError)
	text := fs.String("text", "", "text to match exactly")
	if err := parseFlags(fs, args, stderr, "text"); err != nil {
		return err
	}

	n, err := core.Todos.DeleteByText(ctx, *text)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted %d todo(s)\n", n)
	return nil
}

func deleteOneCmd(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("delete-one", flag.ContinueOnError)
	text := fs.String("text", "", "text to match exactly")
	if err := parseFlags(fs, args, stderr, "text"); err != nil {
		return err
	}

	t, err := core.Todos.DeleteFirstByText(ctx, *text)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(stdout, "no matching todo")
		return nil
	}
	if err != nil {
		return err
	}
	return printTodos(stdout, t)
}

func deleteCmd(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "todo id")
	if err := parseFlags(fs, args, stderr, "id"); err != nil {
		return err
	}

	t, err := core.Todos.Delete(ctx, *id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", *id, err)
	}
	return printTodos(stdout, t)
}

func renameCmd(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	from := fs.String("from", "", "current text")
	to := fs.String("to", "", "new text")
	if err := parseFlags(fs, args, stderr, "from", "to"); err != nil {
		return err
	}

	n, err := core.Todos.RenameAll(ctx, *from, *to)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "renamed %d todo(s)\n", n)
	return nil
}

func passwdCmd(ctx context.Context, core *app.Core, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("passwd", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "new password")
	if err := parseFlags(fs, args, stderr, "email", "password"); err != nil {
		return err
	}

	u, err := core.Users.SetPassword(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("set password for %s: %w", *email, err)
	}
	fmt.Fprintf(stdout, "password updated for %s, all sessions ended\n", u.Email)
	return nil
}
