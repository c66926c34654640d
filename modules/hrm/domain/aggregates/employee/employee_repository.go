package employee

import "context"

// FindParams narrows and pages employee listings. Zero values place no bound.
type FindParams struct {
	Limit        int
	Offset       int
	DepartmentID uint
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Employee, error)
	GetByID(ctx context.Context, id uint) (Employee, error)
	Create(ctx context.Context, data Employee) (Employee, error)
	Update(ctx context.Context, data Employee) error
	Delete(ctx context.Context, id uint) error
}
