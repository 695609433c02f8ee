package repository

import (
	"context"
	"errors"

	"github.com/report-mapping-api/internal/domain"
	"gorm.io/gorm"
)

// MappingRepository определяет интерфейс для агрегированных записей критериев
type MappingRepository interface {
	ListActive(ctx context.Context) ([]domain.MappingRecord, error)
	ListEffective(ctx context.Context, reportNames ...string) ([]domain.MappingRecord, error)
	FindByKey(ctx context.Context, reportName, mappingType, mappingID string) (*domain.MappingRecord, error)
	Create(ctx context.Context, rec *domain.MappingRecord) error
	Update(ctx context.Context, rec *domain.MappingRecord) error
}

type mappingRepository struct {
	db *gorm.DB
}

// NewMappingRepository создаёт новый экземпляр репозитория
func NewMappingRepository(db *gorm.DB) MappingRepository {
	return &mappingRepository{db: db}
}

func (r *mappingRepository) ListActive(ctx context.Context) ([]domain.MappingRecord, error) {
	var records []domain.MappingRecord
	err := conn(ctx, r.db).
		Where("active_flag = ?", domain.ActiveYes).
		Order("sort_order ASC").
		Find(&records).Error
	return records, err
}

// ListEffective возвращает записи, участвующие в разрешении отчётов:
// активные и включённые. Без имён отчётов возвращает записи всех отчётов.
func (r *mappingRepository) ListEffective(ctx context.Context, reportNames ...string) ([]domain.MappingRecord, error) {
	query := conn(ctx, r.db).
		Where("active_flag = ? AND inclusion_flag = ?", domain.ActiveYes, domain.InclusionYes)
	if len(reportNames) > 0 {
		query = query.Where("report_name IN ?", reportNames)
	}

	var records []domain.MappingRecord
	err := query.Order("sort_order ASC").Find(&records).Error
	return records, err
}

// FindByKey ищет запись по точному совпадению (отчёт, тип, значение).
// Если записи нет, возвращает nil без ошибки.
func (r *mappingRepository) FindByKey(ctx context.Context, reportName, mappingType, mappingID string) (*domain.MappingRecord, error) {
	var rec domain.MappingRecord
	err := conn(ctx, r.db).
		Where("report_name = ? AND mapping_type = ? AND mapping_id = ?", reportName, mappingType, mappingID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *mappingRepository) Create(ctx context.Context, rec *domain.MappingRecord) error {
	db := conn(ctx, r.db)
	order, err := nextSortOrder(db, &domain.MappingRecord{})
	if err != nil {
		return err
	}
	rec.SortOrder = order
	return db.Create(rec).Error
}

func (r *mappingRepository) Update(ctx context.Context, rec *domain.MappingRecord) error {
	result := conn(ctx, r.db).
		Model(&domain.MappingRecord{}).
		Where("id = ?", rec.ID).
		Select("*").
		Omit("id", "sort_order").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMappingNotFound
	}
	return nil
}
