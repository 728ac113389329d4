package services

import (
	"context"
	"errors"
	"testing"

	"github.com/evalai/evalai-backend/internal/config"
	"github.com/evalai/evalai-backend/internal/domain"
)

func newAuth(store *fakeStore) *AuthService {
	return NewAuthService(store, config.MasterConfig{
		Username: "marcosramos",
		Name:     "Marcos Ramos",
		Password: "admin123",
	})
}

func TestAuthenticateMaster(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"username", "marcosramos"},
		{"username upper", "MarcosRamos"},
		{"display name lowered", "marcos ramos"},
		{"display name mixed case", "Marcos Ramos"},
		{"padded", "  marcosramos  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			u, err := newAuth(store).Authenticate(context.Background(), tt.username, "admin123")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.ID != MasterUserID || u.Role != domain.RoleMasterAdmin {
				t.Fatalf("expected master identity, got %+v", u)
			}
			if store.session == nil || store.session.ID != MasterUserID {
				t.Error("session record not written")
			}
		})
	}
}

func TestAuthenticateMasterWrongPassword(t *testing.T) {
	store := &fakeStore{}
	_, err := newAuth(store).Authenticate(context.Background(), "marcosramos", "nope")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.session != nil {
		t.Error("session must not be written on failure")
	}
}

func TestAuthenticateStoredUser(t *testing.T) {
	store := &fakeStore{users: []domain.User{
		{ID: "u1", Username: "Ana.Silva", Password: "s3cret", Role: domain.RoleEmployee},
	}}
	svc := newAuth(store)

	u, err := svc.Authenticate(context.Background(), "ana.silva", " s3cret ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("expected u1, got %+v", u)
	}

	if _, err := svc.Authenticate(context.Background(), "ana.silva", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "unknown", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateStoreError(t *testing.T) {
	store := &fakeStore{err: errBoom}
	if _, err := newAuth(store).Authenticate(context.Background(), "whoever", "pw"); !errors.Is(err, errBoom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	store := &fakeStore{session: &domain.User{ID: "u1"}}
	if err := newAuth(store).Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.session != nil {
		t.Error("session should be cleared")
	}
}
