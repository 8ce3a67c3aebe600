package resources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tasknotes/internal/client/models"
)

func categoryQuery(categoryID int64) url.Values {
	return url.Values{"category": []string{strconv.FormatInt(categoryID, 10)}}
}

// Tasks is the /tasks/ collection.
type Tasks struct {
	*Collection[models.Task]
}

func NewTasks(b Backend) *Tasks {
	return &Tasks{Collection: newCollection[models.Task](b, "tasks")}
}

// ListByCategory lists the tasks filed under categoryID.
func (t *Tasks) ListByCategory(ctx context.Context, categoryID int64) ([]models.Task, error) {
	return t.List(ctx, categoryQuery(categoryID))
}

// SetCompleted flips the completion flag of a task.
func (t *Tasks) SetCompleted(ctx context.Context, id int64, completed bool) (*models.Task, error) {
	task, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	task.IsCompleted = completed
	return t.Update(ctx, id, task)
}

// Notes is the /notes/ collection.
type Notes struct {
	*Collection[models.Note]
}

func NewNotes(b Backend) *Notes {
	return &Notes{Collection: newCollection[models.Note](b, "notes")}
}

// ListByCategory lists the notes filed under categoryID.
func (n *Notes) ListByCategory(ctx context.Context, categoryID int64) ([]models.Note, error) {
	return n.List(ctx, categoryQuery(categoryID))
}

// Tags is the /tags/ collection.
type Tags struct {
	*Collection[models.Tag]
}

func NewTags(b Backend) *Tags {
	return &Tags{Collection: newCollection[models.Tag](b, "tags")}
}

// Categories is the /categories/ collection. Deleting a category makes the
// server move its tasks and notes to the parent category.
type Categories struct {
	*Collection[models.Category]
}

func NewCategories(b Backend) *Categories {
	return &Categories{Collection: newCollection[models.Category](b, "categories")}
}

// User covers the /auth/ endpoints.
type User struct {
	backend Backend
}

func NewUser(b Backend) *User {
	return &User{backend: b}
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; persisting it is up to the caller.
func (u *User) Login(ctx context.Context, username, password string) (string, error) {
	var resp models.TokenResponse
	creds := models.Credentials{Username: username, Password: password}
	if err := send(ctx, u.backend, http.MethodPost, u.loginURL(), creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrUnauthorized
	}
	return resp.Token, nil
}

// Logout revokes the token currently sent in the Authorization header.
func (u *User) Logout(ctx context.Context) error {
	return send(ctx, u.backend, http.MethodPost, u.logoutURL(), struct{}{}, nil)
}

// the auth endpoints have no trailing slash on the server side
func (u *User) loginURL() string {
	return strings.TrimSuffix(u.backend.URL("auth", "login"), "/")
}

func (u *User) logoutURL() string {
	return strings.TrimSuffix(u.backend.URL("auth", "logout"), "/")
}
