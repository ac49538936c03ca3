// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"brigade/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateEmployeeInput defines the data required to create a new staff
// account. Status and password are assigned by the service, never taken
// from the request.
type CreateEmployeeInput struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Sex      string `json:"sex"`
	IDNumber string `json:"idNumber"`
}

// PageQueryInput defines a paged listing request. Page is 1-based.
type PageQueryInput struct {
	Page     int                   `json:"page" query:"page"`
	PageSize int                   `json:"pageSize" query:"pageSize"`
	Name     string                `json:"name" query:"name"`
	Status   *entity.AccountStatus `json:"status" query:"status"`
}

// UpdateProfileInput defines a profile edit. Nil fields are left untouched;
// password and status can never be changed through this path.
type UpdateProfileInput struct {
	ID       int64   `json:"id" validate:"required"`
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Sex      *string `json:"sex,omitempty"`
	IDNumber *string `json:"idNumber,omitempty"`
}

// ChangePasswordInput defines a self-service password change. The target
// account is always the authenticated actor, never part of the body.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword"`
}

// --- Output DTOs ---

// PageResult carries the total count of rows matching the filter together
// with the records of the requested page.
type PageResult struct {
	Total   int64              `json:"total"`
	Records []*entity.Employee `json:"records"`
}

// EmployeeUsecase defines the interface for staff account management.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type EmployeeUsecase interface {
	// Login authenticates by username and raw password. The returned record
	// still carries the stored digest; callers must not serialize it.
	Login(ctx context.Context, input *LoginInput) (*entity.Employee, error)

	// Create adds a new enabled account with the default password, stamped
	// with the acting employee's id.
	Create(ctx context.Context, actorID int64, input *CreateEmployeeInput) error

	// PageQuery lists accounts page by page with optional name/status filters.
	PageQuery(ctx context.Context, input *PageQueryInput) (*PageResult, error)

	// SetStatus enables or disables the account with the given id.
	SetStatus(ctx context.Context, actorID int64, id int64, status entity.AccountStatus) error

	// GetByID fetches one account with the password masked.
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)

	// GetByIDNumber fetches one account by national ID with the password masked.
	GetByIDNumber(ctx context.Context, idNumber string) (*entity.Employee, error)

	// UpdateProfile edits non-identity profile fields of an account.
	UpdateProfile(ctx context.Context, actorID int64, input *UpdateProfileInput) error

	// ChangePassword changes the acting employee's own password.
	ChangePassword(ctx context.Context, actorID int64, input *ChangePasswordInput) error
}
