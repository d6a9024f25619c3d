package http_test

import (
	"github.com/jortega/inventario-backend/internal/domain"
	"github.com/jortega/inventario-backend/internal/domain/entity"
	"github.com/jortega/inventario-backend/internal/domain/repository"
)

// Repositorios fake en memoria para probar la capa HTTP de punta a punta
// sin PostgreSQL. Mismo contrato que los repos reales: copias en cada
// lectura/escritura, orden de inserción, email único.

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeProductRepo struct {
	items []*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeProductRepo) CreateMany(ps []*entity.Product) error {
	for _, p := range ps {
		cp := *p
		f.items = append(f.items, &cp)
	}
	return nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		p, _ := f.GetByID(id)
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	for i, it := range f.items {
		if it.ID == p.ID {
			cp := *p
			f.items[i] = &cp
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(id string) (*entity.Product, error) {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) DeleteMany(ids []string) (int64, error) {
	var count int64
	for _, id := range ids {
		if p, _ := f.Delete(id); p != nil {
			count++
		}
	}
	return count, nil
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

type fakeSupplierRepo struct {
	items []*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error {
	cp := *s
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(f.items))
	for _, s := range f.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, s := range f.items {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Update(s *entity.Supplier) error {
	for i, it := range f.items {
		if it.ID == s.ID {
			cp := *s
			f.items[i] = &cp
		}
	}
	return nil
}

func (f *fakeSupplierRepo) Delete(id string) (*entity.Supplier, error) {
	for i, s := range f.items {
		if s.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return s, nil
		}
	}
	return nil, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeUserRepo struct {
	items []*entity.User
}

func (f *fakeUserRepo) byEmail(email string) *entity.User {
	for _, u := range f.items {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if f.byEmail(u.Email) != nil {
		return &domain.DuplicateEmailError{Email: u.Email, Item: -1}
	}
	cp := *u
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeUserRepo) CreateMany(users []*entity.User) error {
	seen := map[string]struct{}{}
	for i, u := range users {
		if _, dup := seen[u.Email]; dup || f.byEmail(u.Email) != nil {
			return &domain.DuplicateEmailError{Email: u.Email, Item: i}
		}
		seen[u.Email] = struct{}{}
	}
	for _, u := range users {
		cp := *u
		f.items = append(f.items, &cp)
	}
	return nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.items))
	for _, u := range f.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.items {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if u := f.byEmail(email); u != nil {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i, it := range f.items {
		if it.ID == u.ID {
			cp := *u
			f.items[i] = &cp
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) (*entity.User, error) {
	for i, u := range f.items {
		if u.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return u, nil
		}
	}
	return nil, nil
}
