package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSubAdmin  Role = "sub_admin"
	RoleEmployee  Role = "employee"
	RoleApplicant Role = "applicant"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	GoogleID     *string
	FullName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
