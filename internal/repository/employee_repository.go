package repository

import (
	"context"
	"errors"

	"github.com/report-mapping-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	FindFirstByMapping(ctx context.Context, mapping domain.Mapping) (*domain.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := conn(ctx, r.db).Order("sort_order ASC, id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// FindFirstByMapping возвращает первого сотрудника, подходящего под предикат.
// Если такого нет, возвращает nil без ошибки.
func (r *employeeRepository) FindFirstByMapping(ctx context.Context, mapping domain.Mapping) (*domain.Employee, error) {
	column, ok := mappingColumns[mapping.Type]
	if !ok {
		return nil, domain.ErrInvalidMappingType
	}

	var employees []domain.Employee
	err := conn(ctx, r.db).
		Where(column+" = ?", mapping.Value).
		Order("sort_order ASC, id ASC").
		Limit(1).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, nil
	}
	return &employees[0], nil
}

// mappingColumns - колонки таблицы employees для каждого типа критерия
var mappingColumns = map[domain.MappingType]string{
	domain.MappingEmployeeID: "id",
	domain.MappingTeamID:     "team_id",
	domain.MappingAreaID:     "area_id",
	domain.MappingCityID:     "city_id",
	domain.MappingCountryID:  "country_id",
}
