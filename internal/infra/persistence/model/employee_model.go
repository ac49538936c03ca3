// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// EmployeeModel mirrors the 'employees' table. The id is a bigserial
// assigned by PostgreSQL; username and id_number carry unique constraints.
type EmployeeModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Username   string `gorm:"type:varchar(32);unique;not null"`
	Name       string `gorm:"type:varchar(32);not null"`
	Password   string `gorm:"type:varchar(64);not null"`
	Phone      string `gorm:"type:varchar(11)"`
	Sex        string `gorm:"type:varchar(2)"`
	IDNumber   string `gorm:"column:id_number;type:varchar(18);unique"`
	Status     int    `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreateUser int64
	UpdateUser int64
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
