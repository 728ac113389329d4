// Package services – authentication.
//
// Credential checking is deliberately plain: trim and lower-case the
// username, trim the password, compare strings. The master admin is a single
// statically-known account checked before the user collection is consulted;
// it never appears in storage. Hardening (hashing, lockout, rate limiting of
// the comparison) is an explicit non-goal inherited from the original
// system.
package services

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/evalai/evalai-backend/internal/config"
	"github.com/evalai/evalai-backend/internal/domain"
)

// MasterUserID is the fixed id of the hardcoded master account. Submissions
// and sessions may reference it even though no user row exists.
const MasterUserID = "master"

// AuthStore is the record-store contract required by AuthService.
type AuthStore interface {
	Users(ctx context.Context) ([]domain.User, error)
	SetSession(ctx context.Context, u *domain.User) error
}

// AuthService validates credentials and maintains the session record.
type AuthService struct {
	Store  AuthStore
	Master config.MasterConfig

	lower cases.Caser
}

// NewAuthService constructs an AuthService with the given master identity.
func NewAuthService(store AuthStore, master config.MasterConfig) *AuthService {
	return &AuthService{
		Store:  store,
		Master: master,
		lower:  cases.Lower(language.Und),
	}
}

// MasterUser returns the distinguished master account record. It is built
// from configuration on every call and never persisted.
func (s *AuthService) MasterUser() domain.User {
	return domain.User{
		ID:       MasterUserID,
		Name:     s.Master.Name,
		Username: s.Master.Username,
		Role:     domain.RoleMasterAdmin,
	}
}

// Authenticate checks the supplied credentials and, on success, stores the
// session record and returns the matched user. The master identity is
// checked first: its username field or its lower-cased display name both
// log in. Otherwise the user collection is scanned for a case-insensitive
// username match with an exact password match.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	cleanUsername := s.lower.String(strings.TrimSpace(username))
	cleanPassword := strings.TrimSpace(password)

	isMasterUsername := cleanUsername == s.Master.Username ||
		cleanUsername == s.lower.String(s.Master.Name)
	if isMasterUsername && cleanPassword == s.Master.Password {
		u := s.MasterUser()
		if err := s.Store.SetSession(ctx, &u); err != nil {
			return nil, err
		}
		return &u, nil
	}

	users, err := s.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if s.lower.String(u.Username) == cleanUsername && u.Password == cleanPassword {
			matched := u
			if err := s.Store.SetSession(ctx, &matched); err != nil {
				return nil, err
			}
			return &matched, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session record.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.Store.SetSession(ctx, nil)
}
