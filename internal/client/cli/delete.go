package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// deleter is the part of a resource collection the delete command uses.
type deleter interface {
	Name() string
	Delete(ctx context.Context, id int64) error
}

var errDeleteUsage = errors.New("usage: delete <task|note|tag|category> <id>")

// singular turns a collection name into the word used on the command line:
// "tasks" -> "task", "categories" -> "category".
func singular(name string) string {
	if s, ok := strings.CutSuffix(name, "ies"); ok {
		return s + "y"
	}
	return strings.TrimSuffix(name, "s")
}

// Delete removes one item. The kind is matched against the collection
// name, singular or plural.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errDeleteUsage
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	res, err := a.resources()
	if err != nil {
		return err
	}

	kind := strings.ToLower(args[0])
	var target deleter
	for _, c := range []deleter{res.Tasks, res.Notes, res.Tags, res.Categories} {
		if kind == c.Name() || kind == singular(c.Name()) {
			target = c
			break
		}
	}
	if target == nil {
		return fmt.Errorf("unknown kind %q: %w", args[0], errDeleteUsage)
	}

	if err := target.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s #%d\n", singular(target.Name()), id)
	if target.Name() == res.Categories.Name() {
		fmt.Fprintln(a.out, "Its tasks and notes now belong to the parent category")
	}
	return nil
}
