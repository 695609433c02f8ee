package repository

import (
	"context"
	"errors"

	"github.com/report-mapping-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeMappingRepository определяет интерфейс для связей сотрудник-отчёт
type EmployeeMappingRepository interface {
	ListByReport(ctx context.Context, reportName string) ([]domain.EmployeeMapping, error)
	ListIncluded(ctx context.Context) ([]domain.EmployeeMapping, error)
	ListIncludedByEmployee(ctx context.Context, employeeID string) ([]domain.EmployeeMapping, error)
	GetByID(ctx context.Context, id string) (*domain.EmployeeMapping, error)
	FindByKey(ctx context.Context, reportName, mappingType, mappingValue, employeeID string) (*domain.EmployeeMapping, error)
	Create(ctx context.Context, m *domain.EmployeeMapping) error
	Update(ctx context.Context, m *domain.EmployeeMapping) error
	ReplaceExisting(ctx context.Context, mappings []domain.EmployeeMapping) (int, error)
}

type employeeMappingRepository struct {
	db *gorm.DB
}

// NewEmployeeMappingRepository создаёт новый экземпляр репозитория
func NewEmployeeMappingRepository(db *gorm.DB) EmployeeMappingRepository {
	return &employeeMappingRepository{db: db}
}

func (r *employeeMappingRepository) ListByReport(ctx context.Context, reportName string) ([]domain.EmployeeMapping, error) {
	var mappings []domain.EmployeeMapping
	err := conn(ctx, r.db).
		Where("report_name = ?", reportName).
		Order("sort_order ASC").
		Find(&mappings).Error
	return mappings, err
}

func (r *employeeMappingRepository) ListIncluded(ctx context.Context) ([]domain.EmployeeMapping, error) {
	var mappings []domain.EmployeeMapping
	err := conn(ctx, r.db).
		Where("inclusion_flag = ?", domain.InclusionYes).
		Order("sort_order ASC").
		Find(&mappings).Error
	return mappings, err
}

func (r *employeeMappingRepository) ListIncludedByEmployee(ctx context.Context, employeeID string) ([]domain.EmployeeMapping, error) {
	var mappings []domain.EmployeeMapping
	err := conn(ctx, r.db).
		Where("employee_id = ? AND inclusion_flag = ?", employeeID, domain.InclusionYes).
		Order("sort_order ASC").
		Find(&mappings).Error
	return mappings, err
}

func (r *employeeMappingRepository) GetByID(ctx context.Context, id string) (*domain.EmployeeMapping, error) {
	var m domain.EmployeeMapping
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMappingNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByKey ищет связь по (отчёт, тип, значение, сотрудник).
// Если связи нет, возвращает nil без ошибки.
func (r *employeeMappingRepository) FindByKey(ctx context.Context, reportName, mappingType, mappingValue, employeeID string) (*domain.EmployeeMapping, error) {
	var m domain.EmployeeMapping
	err := conn(ctx, r.db).
		Where("report_name = ? AND mapping_type = ? AND mapping_value = ? AND employee_id = ?",
			reportName, mappingType, mappingValue, employeeID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *employeeMappingRepository) Create(ctx context.Context, m *domain.EmployeeMapping) error {
	db := conn(ctx, r.db)
	order, err := nextSortOrder(db, &domain.EmployeeMapping{})
	if err != nil {
		return err
	}
	m.SortOrder = order
	return db.Create(m).Error
}

// Update перезаписывает все поля связи, кроме идентификатора и позиции
func (r *employeeMappingRepository) Update(ctx context.Context, m *domain.EmployeeMapping) error {
	result := conn(ctx, r.db).
		Model(&domain.EmployeeMapping{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "sort_order").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMappingNotFound
	}
	return nil
}

// ReplaceExisting заменяет связи с известными идентификаторами на месте.
// Неизвестные идентификаторы пропускаются. Возвращает число заменённых записей.
func (r *employeeMappingRepository) ReplaceExisting(ctx context.Context, mappings []domain.EmployeeMapping) (int, error) {
	replaced := 0
	for i := range mappings {
		err := r.Update(ctx, &mappings[i])
		if errors.Is(err, domain.ErrMappingNotFound) {
			continue
		}
		if err != nil {
			return replaced, err
		}
		replaced++
	}
	return replaced, nil
}
