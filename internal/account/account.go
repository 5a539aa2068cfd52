// Package account implements the sign-in and sign-up flows: exchange
// credentials for an access token and persist it to the session store.
package account

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bookshelf/internal/api"
	"bookshelf/internal/session"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Tokens struct {
	AccessToken string `json:"access_token"`
}

type Service struct {
	client *api.Client
	tokens session.Store
	logger *zap.Logger
}

func NewService(client *api.Client, tokens session.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, tokens: tokens, logger: logger}
}

// SignIn exchanges credentials for a token and stores it. The server's own
// message (e.g. "Invalid credentials") is surfaced verbatim on failure.
func (s *Service) SignIn(ctx context.Context, creds Credentials) error {
	resp, err := api.Post[Tokens](ctx, s.client, "/auth/sign-in", creds)
	if err != nil {
		return err
	}
	if err := s.tokens.Set(resp.Data.AccessToken); err != nil {
		return fmt.Errorf("signed in but failed to persist token: %w", err)
	}
	s.logger.Debug("signed in", zap.String("email", creds.Email))
	return nil
}

// SignUp registers a new account. The backend signs the account in on
// success, so the returned token is stored the same way.
func (s *Service) SignUp(ctx context.Context, creds Credentials) error {
	resp, err := api.Post[Tokens](ctx, s.client, "/auth/sign-up", creds)
	if err != nil {
		return err
	}
	if err := s.tokens.Set(resp.Data.AccessToken); err != nil {
		return fmt.Errorf("signed up but failed to persist token: %w", err)
	}
	s.logger.Debug("signed up", zap.String("email", creds.Email))
	return nil
}

// SignOut clears the stored token. The token is treated as valid until
// cleared; there is no server-side revocation.
func (s *Service) SignOut() error {
	return s.tokens.Clear()
}
