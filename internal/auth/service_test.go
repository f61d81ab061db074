package auth

import (
	"context"
	"testing"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUsers) Get(ctx context.Context, id int64) (models.User, bool, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func newTestService(t *testing.T) (*Service, *SessionStore) {
	t.Helper()
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	users := &fakeUsers{users: []models.User{{ID: 1, Email: "admin@example.com", Name: "Admin", PasswordHash: hash}}}
	logger, _ := test.NewNullLogger()
	sessions := NewSessionStore()
	return NewService(users, sessions, NewTokenSigner("test-secret"), logrus.NewEntry(logger)), sessions
}

func TestLoginAuthenticateLogout(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestService(t)

	token, user, err := svc.Login(ctx, "ADMIN@example.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, 1, sessions.Len())

	me, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)

	svc.Logout(token)
	_, err = svc.Authenticate(ctx, token)
	assert.True(t, apperr.IsUnauthorized(err))

	// logging out twice is harmless
	svc.Logout(token)
	assert.Equal(t, 0, sessions.Len())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestService(t)

	_, _, err := svc.Login(ctx, "admin@example.com", "wrong")
	assert.True(t, apperr.IsUnauthorized(err))

	_, _, err = svc.Login(ctx, "nobody@example.com", "admin123")
	assert.True(t, apperr.IsUnauthorized(err))

	assert.Equal(t, 0, sessions.Len())
}

func TestLoginRequiresFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "", "admin123")
	assert.True(t, apperr.IsValidation(err))

	_, _, err = svc.Login(context.Background(), "admin@example.com", "")
	assert.True(t, apperr.IsValidation(err))
}

func TestEachLoginIssuesDistinctToken(t *testing.T) {
	svc, sessions := newTestService(t)

	a, _, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	b, _, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, sessions.Len())
}

func TestAuthenticateRejectsUnknownTokens(t *testing.T) {
	svc, sessions := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "")
	assert.True(t, apperr.IsUnauthorized(err))

	_, err = svc.Authenticate(context.Background(), "not-a-token")
	assert.True(t, apperr.IsUnauthorized(err))

	// correctly signed but never issued through Login
	forged, err := NewTokenSigner("test-secret").Issue(1)
	require.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), forged)
	assert.True(t, apperr.IsUnauthorized(err))

	// a session whose token was signed with another key
	other, err := NewTokenSigner("other-secret").Issue(1)
	require.NoError(t, err)
	sessions.Put(other, Session{UserID: 1})
	_, err = svc.Authenticate(context.Background(), other)
	assert.True(t, apperr.IsUnauthorized(err))
}

func TestTokenSignerRoundTrip(t *testing.T) {
	signer := NewTokenSigner("s3cret")
	token, err := signer.Issue(42)
	require.NoError(t, err)

	id, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = NewTokenSigner("different").Verify(token)
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("Secret", hash))
}
