package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tasknotes/internal/client/models"
)

// AddTask prompts for a task and creates it.
func (a *App) AddTask(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	due, err := GetOptionalDate(a.reader, "Enter due date", a.out)
	if err != nil {
		return err
	}

	category, err := GetOptionalID(a.reader, "Enter category id", a.out)
	if err != nil {
		return err
	}

	tags, err := a.readTags()
	if err != nil {
		return err
	}

	res, err := a.resources()
	if err != nil {
		return err
	}

	created, err := res.Tasks.Create(ctx, &models.Task{Title: title, Due: due, Category: category, Tags: tags})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", created)
	return nil
}

// AddNote prompts for a note and creates it.
func (a *App) AddNote(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	content, err := GetMultiline(a.reader, "Enter note text", a.out)
	if err != nil {
		return err
	}

	category, err := GetOptionalID(a.reader, "Enter category id", a.out)
	if err != nil {
		return err
	}

	tags, err := a.readTags()
	if err != nil {
		return err
	}

	res, err := a.resources()
	if err != nil {
		return err
	}

	created, err := res.Notes.Create(ctx, &models.Note{Title: title, Content: content, Category: category, Tags: tags})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", created)
	return nil
}

// Done marks the task given as first argument as completed.
func (a *App) Done(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: done <task-id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	res, err := a.resources()
	if err != nil {
		return err
	}

	task, err := res.Tasks.SetCompleted(ctx, id, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, task)
	return nil
}

func (a *App) readTags() ([]string, error) {
	s, err := GetSimpleText(a.reader, "Enter tags, comma separated (empty for none)", a.out)
	if err != nil {
		return nil, err
	}
	return models.TagsFromString(s)
}
