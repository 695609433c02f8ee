package repository

import (
	"context"
	"errors"

	"github.com/report-mapping-api/internal/domain"
	"gorm.io/gorm"
)

// ReportRepository определяет интерфейс для работы с отчётами
type ReportRepository interface {
	List(ctx context.Context) ([]domain.Report, error)
	GetByName(ctx context.Context, name string) (*domain.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository создаёт новый экземпляр репозитория
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) withSupervisors(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Preload("Supervisors", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (r *reportRepository) List(ctx context.Context) ([]domain.Report, error) {
	var reports []domain.Report
	err := r.withSupervisors(ctx).Order("sort_order ASC, id ASC").Find(&reports).Error
	return reports, err
}

func (r *reportRepository) GetByName(ctx context.Context, name string) (*domain.Report, error) {
	var report domain.Report
	err := r.withSupervisors(ctx).Where("name = ?", name).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}
