package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - register:     Create a profile and print its access token
// - show:         Print the profile and its completion notification
// - set-name, set-about, set-links, set-location: Optimistic field edits
// - reorder, move-link: Change the social links order
// - add-skill, remove-skill: Edit habilities
// - watch:        Keep a session open and apply pushed events

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	if name == "watch" {
		return runWatch(args)
	}

	cmd, ok := commands[name]
	if !ok {
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	user := fs.String("user", "", "User id (defaults to remote.userId)")
	run := cmd.flags(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", name)
	}

	a, err := newApp(os.Stdout)
	if err != nil {
		return err
	}

	return a.run(ctx, *user, cmd, run)
}

func printUsage() {
	fmt.Println("Usage: profilesync <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  register      Create a profile and print its access token")
	fmt.Println("  show          Print the profile and completion notification")
	fmt.Println("  set-name      Change the display name")
	fmt.Println("  set-about     Change the about text")
	fmt.Println("  set-links     Change social link URLs")
	fmt.Println("  set-location  Change location and its visibility")
	fmt.Println("  reorder       Replace the social links order")
	fmt.Println("  move-link     Move one social link to another position")
	fmt.Println("  add-skill     Add a hability")
	fmt.Println("  remove-skill  Remove a hability")
	fmt.Println("  watch         Keep a session open and apply pushed events")
	fmt.Println("")
	fmt.Println("Use 'profilesync <command> -h' for more information about a command.")
}
