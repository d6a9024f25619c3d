package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el caso de uso antes de tocar el repositorio).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest actualización parcial. Password presente rota la
// credencial (se hashea); ausente deja el hash actual.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña ni su hash,
// bajo ningún nombre de campo.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
