// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package editors_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periplus-travel/periplus/internal/editors"
	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/dberr"
	"github.com/periplus-travel/periplus/internal/platform/sec"
)

type fakeRepo struct {
	editor *editors.Editor
}

func (repo *fakeRepo) FindByEmail(_ context.Context, email string) (*editors.Editor, error) {
	if repo.editor != nil && repo.editor.Email == email {
		return repo.editor, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepo) FindByID(_ context.Context, id int64) (*editors.Editor, error) {
	if repo.editor != nil && repo.editor.ID == id {
		return repo.editor, nil
	}
	return nil, dberr.ErrNotFound
}

type fakeSessions struct {
	entries map[string]int64
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{entries: map[string]int64{}}
}

func (store *fakeSessions) Set(_ context.Context, tokenHash string, editorID int64, _ time.Duration) error {
	store.entries[tokenHash] = editorID
	return nil
}

func (store *fakeSessions) Get(_ context.Context, tokenHash string) (int64, error) {
	if id, ok := store.entries[tokenHash]; ok {
		return id, nil
	}
	return 0, apperr.Unauthorized("Invalid or expired refresh token")
}

func (store *fakeSessions) Delete(_ context.Context, tokenHash string) error {
	delete(store.entries, tokenHash)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "signed-jwt-for-" + userID, nil
}

func testEditor(t *testing.T) *editors.Editor {
	t.Helper()
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	return &editors.Editor{
		ID:           42,
		Email:        "editor@periplus.travel",
		PasswordHash: hash,
		DisplayName:  "Ariadne",
		Role:         sec.RoleEditor,
	}
}

func newTestService(repo *fakeRepo, sessions *fakeSessions) *editors.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return editors.NewService(repo, sessions, fakeTokens{}, logger)
}

func TestService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sessions := newFakeSessions()
		service := newTestService(&fakeRepo{editor: testEditor(t)}, sessions)

		session, err := service.Login(context.Background(), "editor@periplus.travel", "correct horse battery staple")
		require.NoError(t, err)

		assert.Equal(t, "signed-jwt-for-42", session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Len(t, sessions.entries, 1)
	})

	t.Run("wrong_password", func(t *testing.T) {
		service := newTestService(&fakeRepo{editor: testEditor(t)}, newFakeSessions())

		_, err := service.Login(context.Background(), "editor@periplus.travel", "guess")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("unknown_email_same_message", func(t *testing.T) {
		service := newTestService(&fakeRepo{}, newFakeSessions())

		_, err := service.Login(context.Background(), "stranger@periplus.travel", "whatever")
		require.Error(t, err)
		assert.Equal(t, "Invalid login credentials", apperr.As(err).Message)
	})
}

/*
TestService_RefreshRotation verifies single-use refresh tokens: the old
token dies on use and the replacement works exactly once more.
*/
func TestService_RefreshRotation(t *testing.T) {
	sessions := newFakeSessions()
	service := newTestService(&fakeRepo{editor: testEditor(t)}, sessions)
	ctx := context.Background()

	session, err := service.Login(ctx, "editor@periplus.travel", "correct horse battery staple")
	require.NoError(t, err)

	rotated, err := service.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The consumed token must be rejected on replay.
	_, err = service.Refresh(ctx, session.RefreshToken)
	require.Error(t, err)

	// The rotated token is still live.
	_, err = service.Refresh(ctx, rotated.RefreshToken)
	require.NoError(t, err)
}

func TestService_Logout(t *testing.T) {
	sessions := newFakeSessions()
	service := newTestService(&fakeRepo{editor: testEditor(t)}, sessions)
	ctx := context.Background()

	session, err := service.Login(ctx, "editor@periplus.travel", "correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, session.RefreshToken))
	assert.Empty(t, sessions.entries)

	// Logging out twice is fine.
	require.NoError(t, service.Logout(ctx, session.RefreshToken))
}
