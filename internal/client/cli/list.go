package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tasknotes/internal/client/models"
)

func printItems[T fmt.Stringer](a *App, kind string, items []T) {
	if len(items) == 0 {
		fmt.Fprintf(a.out, "No %s\n", kind)
		return
	}
	for _, item := range items {
		fmt.Fprintln(a.out, item.String())
	}
}

// categoryArg parses an optional category id argument.
func categoryArg(args []string) (int64, bool, error) {
	if len(args) == 0 {
		return 0, false, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// Tasks lists tasks, optionally limited to the category given as first arg.
func (a *App) Tasks(ctx context.Context, args []string) error {
	cat, ok, err := categoryArg(args)
	if err != nil {
		return err
	}
	res, err := a.resources()
	if err != nil {
		return err
	}

	var items []models.Task
	if ok {
		items, err = res.Tasks.ListByCategory(ctx, cat)
	} else {
		items, err = res.Tasks.List(ctx, nil)
	}
	if err != nil {
		return err
	}
	printItems(a, "tasks", items)
	return nil
}

// Notes lists notes, optionally limited to the category given as first arg.
func (a *App) Notes(ctx context.Context, args []string) error {
	cat, ok, err := categoryArg(args)
	if err != nil {
		return err
	}
	res, err := a.resources()
	if err != nil {
		return err
	}

	var items []models.Note
	if ok {
		items, err = res.Notes.ListByCategory(ctx, cat)
	} else {
		items, err = res.Notes.List(ctx, nil)
	}
	if err != nil {
		return err
	}
	printItems(a, "notes", items)
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	res, err := a.resources()
	if err != nil {
		return err
	}
	items, err := res.Tags.List(ctx, nil)
	if err != nil {
		return err
	}
	printItems(a, "tags", items)
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	res, err := a.resources()
	if err != nil {
		return err
	}
	items, err := res.Categories.List(ctx, nil)
	if err != nil {
		return err
	}
	printItems(a, "categories", items)
	return nil
}
