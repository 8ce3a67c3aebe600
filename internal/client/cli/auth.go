package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tasknotes/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout signs out. The local session is gone even when an error is
// returned.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	return a.authService.Logout(ctx)
}

// Status prints what is known about the stored session.
func (a *App) Status(ctx context.Context) error {
	st, err := a.authService.Status(ctx)
	if err != nil {
		return err
	}

	if !st.LoggedIn {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", st.Username)
	if st.Opaque {
		return nil
	}
	if st.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", st.Subject)
	}
	if st.ExpiresAt != nil {
		state := "valid"
		if st.Expired {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token expires: %s (%s)\n", st.ExpiresAt.Format("2006-01-02 15:04:05"), state)
	}
	return nil
}
