// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package editors

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/sec"
)

// TokenProvider signs access tokens for authenticated editors.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements the editor sign-in lifecycle.
type Service struct {
	editors  Repository
	sessions SessionStore
	tokens   TokenProvider
	logger   *slog.Logger
}

func NewService(editors Repository, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		editors:  editors,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Session is a successfully established editor session.
type Session struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Editor                *Editor
}

// Login verifies credentials and issues a token pair. The failure message
// never distinguishes an unknown email from a wrong password.
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {
	editor, err := service.editors.FindByEmail(context, email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(password, editor.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, editor)
	if err != nil {
		return nil, err
	}

	service.logger.Info("editor_logged_in", slog.Int64("editor_id", editor.ID))
	return session, nil
}

// Refresh rotates the session: the presented token is deleted before a new
// pair is issued, so each refresh token is single-use.
func (service *Service) Refresh(context context.Context, refreshToken string) (*Session, error) {
	tokenHash := sec.HashToken(refreshToken)

	editorID, err := service.sessions.Get(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessions.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("editors_refresh_rotation_failed: %w", err)
	}

	editor, err := service.editors.FindByID(context, editorID)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found or suspended")
	}

	return service.issueSession(context, editor)
}

// Logout discards the session. An unknown token is treated as already
// logged out.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessions.Delete(context, sec.HashToken(refreshToken))
}

// Me returns the editor behind an authenticated request.
func (service *Service) Me(context context.Context, editorID int64) (*Editor, error) {
	return service.editors.FindByID(context, editorID)
}

func (service *Service) issueSession(context context.Context, editor *Editor) (*Session, error) {
	accessToken, err := service.tokens.GenerateAccessToken(
		strconv.FormatInt(editor.ID, 10), editor.Email, string(editor.Role), AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("editors_access_token_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("editors_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	if err := service.sessions.Set(context, sec.HashToken(refreshToken), editor.ID, RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("editors_session_store_failed: %w", err)
	}

	return &Session{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Editor:                editor,
	}, nil
}
