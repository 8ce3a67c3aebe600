package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Tasks(ctx context.Context, args []string) error
	Notes(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	Categories(ctx context.Context) error
	AddTask(ctx context.Context) error
	AddNote(ctx context.Context) error
	Done(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// sessionCommands only run with a logged in user.
var sessionCommands = map[string]bool{
	"logout":     true,
	"tasks":      true,
	"notes":      true,
	"tags":       true,
	"categories": true,
	"addtask":    true,
	"addnote":    true,
	"done":       true,
	"delete":     true,
}

// runREPL reads one command per line from reader and dispatches it to a,
// writing everything it shows the user to out.
// The loop ends on EOF or on "exit" / "quit".
//
//	Not logged in:
//	  help, login, status, exit
//
//	Logged in:
//	  help, tasks [category], notes [category], tags, categories,
//	  addtask, addnote, done <id>, delete <kind> <id>, status, logout, exit
//
// Command errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "tn %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if sessionCommands[cmd] && !a.isLoggedIn() {
			fmt.Fprintln(out, "Please login first")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: tasks, notes, tags, categories, addtask, addnote, done, delete, status, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, status, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "tasks":
			cmdErr = a.Tasks(ctx, args)

		case "notes":
			cmdErr = a.Notes(ctx, args)

		case "tags":
			cmdErr = a.Tags(ctx)

		case "categories":
			cmdErr = a.Categories(ctx)

		case "addtask":
			cmdErr = a.AddTask(ctx)

		case "addnote":
			cmdErr = a.AddNote(ctx)

		case "done":
			cmdErr = a.Done(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "error:", cmdErr)
		}
	}
}
