package account

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rithanya77-05/ecofinds/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store.NewBuckets(store.NewMemory(), log), log)
}

func TestSignUpEstablishesSession(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	user, err := svc.SignUp(ctx, "a@x.com", "alice", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password, "returned user must not carry the password")
	assert.NotEmpty(t, user.ProfileImage, "signup assigns a default avatar")

	current, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
	assert.Empty(t, current.Password, "session record must not carry the password")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.SignUp(ctx, "a@x.com", "alice", "secret")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "a@x.com", "bob", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Case differences do not make it a different address.
	_, err = svc.SignUp(ctx, "A@X.com", "carol", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogIn(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.SignUp(ctx, "a@x.com", "alice", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.LogOut(ctx))

	_, err = svc.LogIn(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.LogIn(ctx, "nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.LogIn(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	current, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLogOutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.SignUp(ctx, "a@x.com", "alice", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.LogOut(ctx))

	_, ok := svc.Current(ctx)
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	user, err := svc.SignUp(ctx, "a@x.com", "alice", "secret")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, ProfileUpdate{
		Username:     "alice2",
		Email:        "a2@x.com",
		ProfileImage: "https://example.com/me.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a2@x.com", updated.Email)

	// Both the stored user and the session record change.
	current, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice2", current.Username)

	require.NoError(t, svc.LogOut(ctx))
	_, err = svc.LogIn(ctx, "a2@x.com", "secret")
	assert.NoError(t, err, "password survives a profile update")

	_, err = svc.UpdateProfile(ctx, "no-such-user", ProfileUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
