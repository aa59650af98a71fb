package entities

import (
	"errors"
	"strings"
	"time"
)

// EmployeeRole is the job title (cargo) of an employee.
type EmployeeRole string

const (
	EmployeeRoleAtendente     EmployeeRole = "atendente"
	EmployeeRoleBarbeiro      EmployeeRole = "barbeiro"
	EmployeeRoleGerente       EmployeeRole = "gerente"
	EmployeeRoleAdministrador EmployeeRole = "administrador"
)

// AccessLevel controls what an operator token may do.
type AccessLevel string

const (
	AccessLevelSuperAdmin AccessLevel = "super-admin"
	AccessLevelAdmin      AccessLevel = "admin"
	AccessLevelEmployee   AccessLevel = "employee"
)

var (
	ErrInvalidEmployee    = errors.New("invalid employee")
	ErrInvalidRole        = errors.New("invalid employee role")
	ErrInvalidAccessLevel = errors.New("invalid access level")
)

type Employee struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email,omitempty"`
	Role        EmployeeRole `json:"role"`
	AccessLevel AccessLevel  `json:"access_level"`
	CreatedAt   time.Time    `json:"created_at"`
}

func ParseEmployeeRole(s string) (EmployeeRole, error) {
	switch r := EmployeeRole(strings.ToLower(strings.TrimSpace(s))); r {
	case EmployeeRoleAtendente, EmployeeRoleBarbeiro, EmployeeRoleGerente, EmployeeRoleAdministrador:
		return r, nil
	}
	return "", ErrInvalidRole
}

func ParseAccessLevel(s string) (AccessLevel, error) {
	switch a := AccessLevel(strings.ToLower(strings.TrimSpace(s))); a {
	case "":
		return AccessLevelEmployee, nil
	case AccessLevelSuperAdmin, AccessLevelAdmin, AccessLevelEmployee:
		return a, nil
	}
	return "", ErrInvalidAccessLevel
}

// IsAdmin reports whether the level may manage staff and read reports.
func (a AccessLevel) IsAdmin() bool {
	return a == AccessLevelAdmin || a == AccessLevelSuperAdmin
}

func (e Employee) Normalize() (Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	if e.Name == "" {
		return Employee{}, ErrInvalidEmployee
	}
	role, err := ParseEmployeeRole(string(e.Role))
	if err != nil {
		return Employee{}, err
	}
	level, err := ParseAccessLevel(string(e.AccessLevel))
	if err != nil {
		return Employee{}, err
	}
	e.Role = role
	e.AccessLevel = level
	return e, nil
}
