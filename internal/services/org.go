// Package services – organizational structure.
//
// Companies, sectors, roles, and user accounts are managed here. Deleting a
// company cascades, by convention rather than referential integrity, to its
// sectors and roles only: users and evaluations keep their now-dangling
// foreign keys and render as "N/A" wherever they are displayed.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/evalai/evalai-backend/internal/domain"
)

// OrgStore is the record-store contract required by OrgService.
type OrgStore interface {
	Companies(ctx context.Context) ([]domain.Company, error)
	SaveCompanies(ctx context.Context, items []domain.Company) error
	Sectors(ctx context.Context) ([]domain.Sector, error)
	SaveSectors(ctx context.Context, items []domain.Sector) error
	Roles(ctx context.Context) ([]domain.Role, error)
	SaveRoles(ctx context.Context, items []domain.Role) error
	Users(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, items []domain.User) error
}

// OrgService manages the four organizational collections.
type OrgService struct {
	Store OrgStore
}

// NewOrgService constructs an OrgService.
func NewOrgService(store OrgStore) *OrgService { return &OrgService{Store: store} }

// Companies returns the whole company collection.
func (s *OrgService) Companies(ctx context.Context) ([]domain.Company, error) {
	return s.Store.Companies(ctx)
}

// Sectors returns the whole sector collection.
func (s *OrgService) Sectors(ctx context.Context) ([]domain.Sector, error) {
	return s.Store.Sectors(ctx)
}

// Roles returns the whole role collection.
func (s *OrgService) Roles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles(ctx)
}

// Users returns the whole user collection.
func (s *OrgService) Users(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users(ctx)
}

// CreateCompany appends a new company.
func (s *OrgService) CreateCompany(ctx context.Context, name string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrValidation)
	}
	companies, err := s.Store.Companies(ctx)
	if err != nil {
		return nil, err
	}
	c := domain.Company{ID: uuid.NewString(), Name: name}
	if err := s.Store.SaveCompanies(ctx, append(companies, c)); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCompany removes a company and cascades to its sectors and roles.
// Users and evaluations referencing the company are intentionally left
// untouched.
func (s *OrgService) DeleteCompany(ctx context.Context, id string) error {
	companies, err := s.Store.Companies(ctx)
	if err != nil {
		return err
	}
	kept := companies[:0:0]
	found := false
	for _, c := range companies {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrCompanyNotFound
	}
	if err := s.Store.SaveCompanies(ctx, kept); err != nil {
		return err
	}

	sectors, err := s.Store.Sectors(ctx)
	if err != nil {
		return err
	}
	keptSectors := sectors[:0:0]
	for _, sec := range sectors {
		if sec.CompanyID != id {
			keptSectors = append(keptSectors, sec)
		}
	}
	if err := s.Store.SaveSectors(ctx, keptSectors); err != nil {
		return err
	}

	roles, err := s.Store.Roles(ctx)
	if err != nil {
		return err
	}
	keptRoles := roles[:0:0]
	for _, r := range roles {
		if r.CompanyID != id {
			keptRoles = append(keptRoles, r)
		}
	}
	return s.Store.SaveRoles(ctx, keptRoles)
}

// CreateSector appends a sector to a company.
func (s *OrgService) CreateSector(ctx context.Context, companyID, name string) (*domain.Sector, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(companyID) == "" {
		return nil, fmt.Errorf("%w: sector name and companyId are required", ErrValidation)
	}
	sectors, err := s.Store.Sectors(ctx)
	if err != nil {
		return nil, err
	}
	sec := domain.Sector{ID: uuid.NewString(), CompanyID: companyID, Name: name}
	if err := s.Store.SaveSectors(ctx, append(sectors, sec)); err != nil {
		return nil, err
	}
	return &sec, nil
}

// DeleteSector removes one sector. Users pointing at it become dangling.
func (s *OrgService) DeleteSector(ctx context.Context, id string) error {
	sectors, err := s.Store.Sectors(ctx)
	if err != nil {
		return err
	}
	kept := sectors[:0:0]
	for _, sec := range sectors {
		if sec.ID != id {
			kept = append(kept, sec)
		}
	}
	return s.Store.SaveSectors(ctx, kept)
}

// CreateRole appends a job title to a company.
func (s *OrgService) CreateRole(ctx context.Context, companyID, name string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(companyID) == "" {
		return nil, fmt.Errorf("%w: role name and companyId are required", ErrValidation)
	}
	roles, err := s.Store.Roles(ctx)
	if err != nil {
		return nil, err
	}
	r := domain.Role{ID: uuid.NewString(), CompanyID: companyID, Name: name}
	if err := s.Store.SaveRoles(ctx, append(roles, r)); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRole removes one job title.
func (s *OrgService) DeleteRole(ctx context.Context, id string) error {
	roles, err := s.Store.Roles(ctx)
	if err != nil {
		return err
	}
	kept := roles[:0:0]
	for _, r := range roles {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.Store.SaveRoles(ctx, kept)
}

// NewUser carries the fields for account creation. Company, sector, and role
// are optional for employees.
type NewUser struct {
	Name      string
	Username  string
	Password  string
	Role      domain.UserRole
	CompanyID string
	SectorID  string
	RoleID    string
}

// CreateUser appends a manager or employee account. The master admin cannot
// be created; it exists only in configuration.
func (s *OrgService) CreateUser(ctx context.Context, in NewUser) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, username and password are required", ErrValidation)
	}
	if in.Role != domain.RoleManager && in.Role != domain.RoleEmployee {
		return nil, fmt.Errorf("%w: role must be MANAGER or EMPLOYEE", ErrValidation)
	}
	users, err := s.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Username:  in.Username,
		Password:  in.Password,
		Role:      in.Role,
		CompanyID: in.CompanyID,
		SectorID:  in.SectorID,
		RoleID:    in.RoleID,
	}
	if err := s.Store.SaveUsers(ctx, append(users, u)); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes one account. Its submissions stay and render as "N/A".
func (s *OrgService) DeleteUser(ctx context.Context, id string) error {
	users, err := s.Store.Users(ctx)
	if err != nil {
		return err
	}
	kept := users[:0:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrUserNotFound
	}
	return s.Store.SaveUsers(ctx, kept)
}
