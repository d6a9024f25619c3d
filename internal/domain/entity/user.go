package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrator    = "Administrator"
	RoleTechnicalSupport = "Technical Support"
	RoleMaintenance      = "Maintenance"
	RoleAccountant       = "Accountant"
	RoleCustomerService  = "Customer Service"
)

// ValidRoles enumeración cerrada de roles; cualquier otro valor se rechaza.
var ValidRoles = []string{
	RoleAdministrator,
	RoleTechnicalSupport,
	RoleMaintenance,
	RoleAccountant,
	RoleCustomerService,
}

// IsValidRole indica si role pertenece a la enumeración.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema. El email es único (case-sensitive)
// entre todos los usuarios; PasswordHash nunca sale en ninguna respuesta.
// CreatedAt se asigna al crear y es inmutable.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
