package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jortega/inventario-backend/internal/application/dto"
	"github.com/jortega/inventario-backend/internal/domain"
	"github.com/jortega/inventario-backend/internal/domain/entity"
	"github.com/jortega/inventario-backend/internal/domain/repository"
	"github.com/jortega/inventario-backend/pkg/password"
)

// UserUseCase casos de uso para usuarios. La contraseña se hashea antes de
// tocar el repositorio y se elimina de toda respuesta, sin excepción.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher *password.Hasher
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, hasher *password.Hasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create valida, verifica unicidad de email, hashea la contraseña y persiste.
// El pre-chequeo de email no es atómico con el insert: ante una carrera, el
// constraint único de la base decide y el error llega igual como duplicado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.buildUser(in, -1)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateEmailError{Email: in.Email, Item: -1}
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// CreateBatch procesa el lote en orden de entrada: valida cada item, chequea
// el email contra lo persistido Y contra los items anteriores del mismo lote
// (dos usuarios nuevos con el mismo correo en una petición no pueden entrar
// ambos), hashea cada contraseña y hace un único insert todo-o-nada. El
// primer conflicto rechaza el lote completo señalando el item culpable.
func (uc *UserUseCase) CreateBatch(in []dto.CreateUserRequest) ([]dto.UserResponse, error) {
	if len(in) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	seen := make(map[string]struct{}, len(in))
	users := make([]*entity.User, 0, len(in))
	for i, item := range in {
		user, err := uc.buildUser(item, i)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[item.Email]; dup {
			return nil, &domain.DuplicateEmailError{Email: item.Email, Item: i}
		}
		existing, err := uc.repo.GetByEmail(item.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &domain.DuplicateEmailError{Email: item.Email, Item: i}
		}
		seen[item.Email] = struct{}{}
		users = append(users, user)
	}
	if err := uc.repo.CreateMany(users); err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// List devuelve todos los usuarios, sin contraseñas.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID, sin contraseña. Devuelve nil, nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial. Password presente rota la
// credencial; ausente conserva el hash actual. created_at nunca cambia.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	changed := false
	if in.Name != nil {
		user.Name = *in.Name
		changed = true
	}
	if in.Email != nil {
		user.Email = *in.Email
		changed = true
	}
	if in.Role != nil {
		user.Role = *in.Role
		changed = true
	}
	var fields []domain.FieldError
	if in.Password != nil {
		if *in.Password == "" {
			fields = append(fields, domain.FieldError{Field: "password", Reason: "requerido"})
		} else {
			hash, err := uc.hasher.Hash(*in.Password)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = hash
			changed = true
		}
	}
	if !changed && len(fields) == 0 {
		return toUserResponse(user), nil
	}
	fields = append(fields, domain.ValidateUser(user)...)
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Item: -1, Fields: fields}
	}
	if in.Email != nil {
		existing, err := uc.repo.GetByEmail(user.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, &domain.DuplicateEmailError{Email: user.Email, Item: -1}
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario y devuelve el registro eliminado (sin contraseña),
// o nil, nil si no existe.
func (uc *UserUseCase) Delete(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// buildUser valida el payload candidato, hashea la contraseña y produce el
// registro tipado. item es el índice dentro de un lote (-1 fuera).
func (uc *UserUseCase) buildUser(in dto.CreateUserRequest, item int) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields := domain.ValidateUser(user)
	if in.Password == "" {
		fields = append(fields, domain.FieldError{Field: "password", Reason: "requerido"})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Item: item, Fields: fields}
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	return user, nil
}

// toUserResponse nunca copia PasswordHash: el secreto no existe en la salida.
func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
