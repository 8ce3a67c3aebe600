// Package models defines the DTOs exchanged with the tasknotes backend.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrEmptyTagName = errors.New("tag name must not be empty")

// Category groups tasks and notes. Categories form a tree via Parent.
type Category struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Parent *int64 `json:"parent,omitempty"`
}

func (c Category) String() string {
	if c.Parent != nil {
		return fmt.Sprintf("#%d %s (parent #%d)", c.ID, c.Name, *c.Parent)
	}
	return fmt.Sprintf("#%d %s", c.ID, c.Name)
}

// Tag is a free-form label attached to tasks and notes.
type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"tag"`
}

func (t Tag) String() string {
	return fmt.Sprintf("#%d %s", t.ID, t.Name)
}

// Note is a piece of text owned by the current user.
type Note struct {
	ID        int64      `json:"id,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  *int64     `json:"category,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Created   *time.Time `json:"created,omitempty"`
	Edited    *time.Time `json:"edited,omitempty"`
	IsDeleted bool       `json:"is_deleted,omitempty"`
}

func (n Note) String() string {
	return fmt.Sprintf("#%d %s%s", n.ID, n.Title, formatTags(n.Tags))
}

// Task is a to-do item.
type Task struct {
	ID          int64      `json:"id,omitempty"`
	Title       string     `json:"title"`
	Content     string     `json:"content,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	Due         *time.Time `json:"due,omitempty"`
	Category    *int64     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Edited      *time.Time `json:"edited,omitempty"`
	IsDeleted   bool       `json:"is_deleted,omitempty"`
}

func (t Task) String() string {
	mark := " "
	if t.IsCompleted {
		mark = "x"
	}
	return fmt.Sprintf("[%s] #%d %s%s", mark, t.ID, t.Title, formatTags(t.Tags))
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	Token string `json:"token"`
}

// TagsFromString splits a comma separated list into tag names, dropping
// surrounding whitespace. Empty elements are rejected.
func TagsFromString(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, ErrEmptyTagName
		}
		tags = append(tags, p)
	}
	return tags, nil
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ", ") + "]"
}
