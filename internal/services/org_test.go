package services

import (
	"context"
	"errors"
	"testing"

	"github.com/evalai/evalai-backend/internal/domain"
)

func TestCreateCompany(t *testing.T) {
	store := &fakeStore{}
	svc := NewOrgService(store)

	c, err := svc.CreateCompany(context.Background(), "  Acme  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Acme" || c.ID == "" {
		t.Fatalf("unexpected company: %+v", c)
	}
	if len(store.companies) != 1 {
		t.Fatalf("expected 1 stored company, got %d", len(store.companies))
	}

	if _, err := svc.CreateCompany(context.Background(), "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteCompanyCascade(t *testing.T) {
	store := &fakeStore{
		companies: []domain.Company{{ID: "c1"}, {ID: "c2"}},
		sectors:   []domain.Sector{{ID: "s1", CompanyID: "c1"}, {ID: "s2", CompanyID: "c2"}},
		roles:     []domain.Role{{ID: "r1", CompanyID: "c1"}, {ID: "r2", CompanyID: "c2"}},
		users:     []domain.User{{ID: "u1", CompanyID: "c1"}},
	}
	svc := NewOrgService(store)

	if err := svc.DeleteCompany(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.companies) != 1 || store.companies[0].ID != "c2" {
		t.Errorf("company not removed: %+v", store.companies)
	}
	if len(store.sectors) != 1 || store.sectors[0].ID != "s2" {
		t.Errorf("sectors of the company should cascade: %+v", store.sectors)
	}
	if len(store.roles) != 1 || store.roles[0].ID != "r2" {
		t.Errorf("roles of the company should cascade: %+v", store.roles)
	}
	if len(store.users) != 1 {
		t.Errorf("users must survive a company delete: %+v", store.users)
	}

	if err := svc.DeleteCompany(context.Background(), "missing"); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestSectorAndRoleLifecycle(t *testing.T) {
	store := &fakeStore{}
	svc := NewOrgService(store)

	sec, err := svc.CreateSector(context.Background(), "c1", "Sales")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec.CompanyID != "c1" {
		t.Fatalf("unexpected sector: %+v", sec)
	}
	if _, err := svc.CreateSector(context.Background(), "", "Sales"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := svc.DeleteSector(context.Background(), sec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.sectors) != 0 {
		t.Errorf("sector not removed: %+v", store.sectors)
	}

	r, err := svc.CreateRole(context.Background(), "c1", "Rep")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteRole(context.Background(), r.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.roles) != 0 {
		t.Errorf("role not removed: %+v", store.roles)
	}
}

func TestCreateUser(t *testing.T) {
	store := &fakeStore{}
	svc := NewOrgService(store)

	u, err := svc.CreateUser(context.Background(), NewUser{
		Name:     "Ana",
		Username: "ana",
		Password: "pw",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == "" || u.Role != domain.RoleEmployee {
		t.Fatalf("unexpected user: %+v", u)
	}

	bad := []NewUser{
		{Username: "x", Password: "pw", Role: domain.RoleEmployee},
		{Name: "x", Password: "pw", Role: domain.RoleEmployee},
		{Name: "x", Username: "x", Role: domain.RoleEmployee},
		{Name: "x", Username: "x", Password: "pw", Role: domain.RoleMasterAdmin},
		{Name: "x", Username: "x", Password: "pw", Role: "BOSS"},
	}
	for i, in := range bad {
		if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestDeleteUser(t *testing.T) {
	store := &fakeStore{users: []domain.User{{ID: "u1"}, {ID: "u2"}}}
	svc := NewOrgService(store)

	if err := svc.DeleteUser(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.users) != 1 || store.users[0].ID != "u2" {
		t.Errorf("user not removed: %+v", store.users)
	}
	if err := svc.DeleteUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
