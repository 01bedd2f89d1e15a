package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByType(ctx context.Context, payType PayType) ([]Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
