package main

import (
	"errors"
	"fmt"
	"time"

	"docsearch/internal/session"
)

// Run stores a session for the given email address.
func (c *LoginCmd) Run(deps *Dependencies) error {
	sess, err := deps.Sessions.Login(c.Email, time.Now())
	if err != nil {
		return err
	}
	deps.Logger.Info("signed in", "email", sess.Email, "path", deps.Sessions.Path())
	fmt.Fprintln(deps.Stdout, sess.Greeting())
	return nil
}

// Run removes the stored session.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	err := deps.Sessions.Logout()
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(deps.Stdout, "Not signed in.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, "Signed out.")
	return nil
}
