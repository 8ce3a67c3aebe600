// Package cli provides the interactive tasknotes command-line client.
//
// It waits for the API facade to finish its handshake, restores the stored
// session and then runs a small REPL on top of the resource handles.
//
// Commands:
//   - login / logout / status
//   - tasks [category-id], notes [category-id], tags, categories
//   - addtask, addnote, done <task-id>
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
