package repository

import "github.com/jortega/inventario-backend/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El constraint único de email en la base es la autoridad final: Create y
// CreateMany devuelven *domain.DuplicateEmailError aunque el pre-chequeo
// del caso de uso haya pasado (carrera entre dos creates concurrentes).
type UserRepository interface {
	Create(user *entity.User) error
	// CreateMany inserta el lote completo o nada (una sola transacción).
	CreateMany(users []*entity.User) error
	List() ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) (*entity.User, error)
}
