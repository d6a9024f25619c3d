// Package password protege las contraseñas de usuario con bcrypt.
// La transformación es unidireccional y con sal: dos llamadas con el mismo
// texto plano producen hashes distintos. No hay Verify: no existe flujo de
// login en este sistema.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher aplica bcrypt con un factor de trabajo fijo configurado.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher. Un cost fuera del rango de bcrypt cae al
// DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash devuelve la forma almacenable de plain. Operación costosa en CPU;
// no debe ejecutarse bajo locks compartidos.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
