package service

import (
	"context"
	"fmt"
	"log/slog"
)

// Signup stores a new account. Passwords are kept in plaintext.
func (s *Service) Signup(ctx context.Context, username, password string) error {
	const op = "service.Signup"

	if username == "" || password == "" {
		return fmt.Errorf("%s: username and password are required: %w", op, ErrValidation)
	}

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, exists := doc.Users[username]; exists {
		return fmt.Errorf("%s: user %q already exists: %w", op, username, ErrConflict)
	}

	doc.Users[username] = password

	if err = s.save(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("user signed up", slog.String("username", username))

	return nil
}

// Login succeeds iff the stored password equals password. No session is issued;
// callers pass the username to every later privileged operation.
func (s *Service) Login(ctx context.Context, username, password string) error {
	const op = "service.Login"

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stored, exists := doc.Users[username]
	if username == "" || !exists || stored != password {
		return fmt.Errorf("%s: incorrect username or password: %w", op, ErrAuth)
	}

	return nil
}
