package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	loggedIn() bool
	Login(ctx context.Context) error
	TogglePassword(ctx context.Context) error
	Signup(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads one command per line and dispatches it according to the
// current screen. It returns on EOF or on "exit"/"quit".
//
//	Login screen:
//	  - login          sign in with document number and password
//	  - toggle         show or hide the password while typing
//	  - signup         open the membership page in the browser
//	  - status         show the screen and the stored session
//	  - help | exit
//
//	Home screen:
//	  - profile        show the affiliate data
//	  - logout         drop the stored session and return to login
//	  - status         show the screen and the stored session
//	  - help | exit
//
// Handler errors are not reported here; handlers show their own alerts.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("integra %s> ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch {
		case cmd == "exit" || cmd == "quit":
			printlnFn("Hasta luego!")
			return

		case cmd == "help":
			if a.loggedIn() {
				printlnFn("Comandos: profile, logout, status, exit")
			} else {
				printlnFn("Comandos: login, toggle, signup, status, exit")
			}

		case cmd == "status":
			_ = a.Status(ctx)

		case !a.loggedIn() && cmd == "login":
			_ = a.Login(ctx)

		case !a.loggedIn() && cmd == "toggle":
			_ = a.TogglePassword(ctx)

		case !a.loggedIn() && cmd == "signup":
			_ = a.Signup(ctx)

		case a.loggedIn() && cmd == "profile":
			_ = a.Profile(ctx)

		case a.loggedIn() && cmd == "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Comando desconocido:", cmd)
		}
	}
}
