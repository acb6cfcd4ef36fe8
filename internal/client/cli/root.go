package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Password(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Workshops(ctx context.Context, args []string) error
	Workshop(ctx context.Context, args []string) error
	Enrolled(ctx context.Context) error
	Enroll(ctx context.Context, args []string) error
	Unenroll(ctx context.Context, args []string) error
	Explore(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) error
	Apply(ctx context.Context) error
}

// runREPL starts a read-eval-print loop. It reads a line from the scanner,
// parses the first token as the command, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("addons> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: workshops, workshop <slug>, enrolled, enroll <id>, unenroll <id>, explore, filter, cart, add <id>, remove <id>, clear, checkout, apply, profile, editprofile, password, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset, workshops, workshop <slug>, explore, filter, apply, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "password":
			_ = a.Password(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "workshops":
			_ = a.Workshops(ctx, args)

		case "workshop":
			_ = a.Workshop(ctx, args)

		case "enrolled":
			_ = a.Enrolled(ctx)

		case "enroll":
			_ = a.Enroll(ctx, args)

		case "unenroll":
			_ = a.Unenroll(ctx, args)

		case "explore":
			_ = a.Explore(ctx)

		case "filter":
			_ = a.Filter(ctx, args)

		case "cart":
			_ = a.Cart(ctx)

		case "add":
			_ = a.Add(ctx, args)

		case "remove":
			_ = a.Remove(ctx, args)

		case "clear":
			_ = a.Clear(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}

func (a *App) getStatus() string {
	if u := a.auth.User(); u != nil {
		return fmt.Sprintf("(%s) ", u.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the LocalAddons CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
