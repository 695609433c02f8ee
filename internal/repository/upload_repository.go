package repository

import (
	"context"

	"github.com/report-mapping-api/internal/domain"
	"gorm.io/gorm"
)

// UploadRepository определяет интерфейс для истории загрузок
type UploadRepository interface {
	Create(ctx context.Context, rec *domain.UploadRecord) error
	List(ctx context.Context, fileType, month string) ([]domain.UploadRecord, error)
}

type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository создаёт новый экземпляр репозитория
func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, rec *domain.UploadRecord) error {
	return conn(ctx, r.db).Create(rec).Error
}

// List возвращает загрузки, новые первыми. Пустые фильтры не применяются.
func (r *uploadRepository) List(ctx context.Context, fileType, month string) ([]domain.UploadRecord, error) {
	query := conn(ctx, r.db)
	if fileType != "" {
		query = query.Where("file_type = ?", fileType)
	}
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var uploads []domain.UploadRecord
	err := query.Order("uploaded_at DESC").Find(&uploads).Error
	return uploads, err
}
