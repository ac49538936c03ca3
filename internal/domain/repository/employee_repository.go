// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"brigade/internal/domain/entity"
)

// ErrEmployeeNotFound is a domain-specific error returned when an employee record is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeFilter narrows a paged fetch. Zero values mean "no constraint".
type EmployeeFilter struct {
	Name   string                // Substring match on the display name.
	Status *entity.AccountStatus // Exact status match when set.
}

// EmployeePatch is an explicit optional-field update: only non-nil fields
// are written, so "unset" and "not provided" can never be confused.
// UpdateUser is always stamped alongside the patched columns.
type EmployeePatch struct {
	Username *string
	Name     *string
	Phone    *string
	Sex      *string
	IDNumber *string
	Password *string
	Status   *entity.AccountStatus

	UpdateUser int64
}

// Empty reports whether the patch carries no field updates.
func (p EmployeePatch) Empty() bool {
	return p.Username == nil && p.Name == nil && p.Phone == nil &&
		p.Sex == nil && p.IDNumber == nil && p.Password == nil && p.Status == nil
}

// EmployeeRepository defines the standard operations for employee persistence.
// The application layer will depend on this interface, not the concrete implementation.
type EmployeeRepository interface {
	// FindByID retrieves a single employee by their store-assigned id.
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)

	// FindByUsername retrieves a single employee by their unique login name.
	FindByUsername(ctx context.Context, username string) (*entity.Employee, error)

	// FindByIDNumber retrieves a single employee by their national ID number.
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.Employee, error)

	// Create persists a new employee record. The store assigns id and timestamps.
	Create(ctx context.Context, employee *entity.Employee) error

	// Update applies the non-nil fields of patch to the record with the given id.
	// Updating an absent id is not an error at this layer.
	Update(ctx context.Context, id int64, patch EmployeePatch) error

	// PagedFind returns the records of the requested 1-based page in store
	// order, together with the total count of rows matching the filter.
	PagedFind(ctx context.Context, filter EmployeeFilter, page, pageSize int) ([]*entity.Employee, int64, error)
}
