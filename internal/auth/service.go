// server/internal/auth/service.go
package auth

import (
	"context"
	"strings"
	"time"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"

	"github.com/sirupsen/logrus"
)

// UserStore is the part of the user collection the session layer needs.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, bool, error)
}

type Service struct {
	users    UserStore
	sessions *SessionStore
	signer   *TokenSigner
	now      func() time.Time
	log      *logrus.Entry
}

func NewService(users UserStore, sessions *SessionStore, signer *TokenSigner, log *logrus.Entry) *Service {
	return &Service{users: users, sessions: sessions, signer: signer, now: time.Now, log: log}
}

// Login checks the credential and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.PublicUser, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", models.PublicUser{}, apperr.RequiredError("email")
	}
	if password == "" {
		return "", models.PublicUser{}, apperr.RequiredError("password")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	var user *models.User
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user = &users[i]
			break
		}
	}
	if user == nil || !CheckPasswordHash(password, user.PasswordHash) {
		s.log.WithField("email", email).Warn("Rejected login attempt")
		return "", models.PublicUser{}, apperr.Unauthorized("invalid credentials")
	}

	token, err := s.signer.Issue(user.ID)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	s.sessions.Put(token, Session{UserID: user.ID, CreatedAt: s.now()})
	s.log.WithField("userId", user.ID).Info("User logged in")
	return token, user.Public(), nil
}

// Authenticate resolves a token to its user. The token must verify and still have a session.
func (s *Service) Authenticate(ctx context.Context, token string) (models.PublicUser, error) {
	if token == "" {
		return models.PublicUser{}, apperr.Unauthorized("missing token")
	}
	session, ok := s.sessions.Get(token)
	if !ok {
		return models.PublicUser{}, apperr.Unauthorized("invalid or expired token")
	}
	userID, err := s.signer.Verify(token)
	if err != nil || userID != session.UserID {
		s.sessions.Delete(token)
		return models.PublicUser{}, apperr.Unauthorized("invalid or expired token")
	}
	user, found, err := s.users.Get(ctx, userID)
	if err != nil {
		return models.PublicUser{}, err
	}
	if !found {
		s.sessions.Delete(token)
		return models.PublicUser{}, apperr.Unauthorized("invalid or expired token")
	}
	return user.Public(), nil
}

// Logout ends the session. Unknown tokens are ignored.
func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}
