// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// AccountStatus is the two-state enable/disable switch on an employee account.
type AccountStatus int

const (
	// StatusDisabled marks an account that is locked out of the admin backend.
	StatusDisabled AccountStatus = 0

	// StatusEnabled marks an active account.
	StatusEnabled AccountStatus = 1
)

// DefaultRawPassword is the well-known password assigned to newly created
// accounts. The first login is expected to prompt a change.
const DefaultRawPassword = "123456"

// PasswordMask replaces the stored password digest whenever an employee
// record is handed back for display purposes.
const PasswordMask = "****"

// Employee is the staff account entity of the admin backend. The Password
// field holds the opaque hex digest, never the raw value.
type Employee struct {
	ID         int64         // Store-assigned unique identifier.
	Username   string        // Unique login name.
	Name       string        // Display name.
	Password   string        // Opaque password digest, or PasswordMask on read-back.
	Phone      string        // Contact phone number.
	Sex        string        // Sex marker as captured by the admin UI.
	IDNumber   string        // National ID number, secondary unique lookup key.
	Status     AccountStatus // Enabled or disabled.
	CreatedAt  time.Time     // Timestamp of account creation.
	UpdatedAt  time.Time     // Timestamp of the last modification.
	CreateUser int64         // Actor id that created the record.
	UpdateUser int64         // Actor id of the last modification.
}

// Enabled reports whether the account may log in.
func (e *Employee) Enabled() bool {
	return e.Status == StatusEnabled
}
