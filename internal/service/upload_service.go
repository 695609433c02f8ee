package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/repository"
)

// UploadStatusCompleted - статус успешно обработанной загрузки
const UploadStatusCompleted = "Completed"

// expectedHeaders - обязательные колонки для каждого типа файла
var expectedHeaders = map[string][]string{
	"travel":    {"employee_id", "destination", "departure_date", "return_date", "purpose", "cost"},
	"donations": {"employee_id", "charity_name", "donation_date", "amount", "matched"},
	"meetings":  {"employee_id", "meeting_date", "duration", "attendees", "purpose", "location"},
}

// fileTypes возвращает поддерживаемые типы файлов в алфавитном порядке
func fileTypes() []string {
	types := make([]string, 0, len(expectedHeaders))
	for t := range expectedHeaders {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// schemaFor возвращает обязательные колонки типа файла.
// Ошибка для неизвестного типа перечисляет поддерживаемые.
func schemaFor(fileType string) ([]string, error) {
	required, ok := expectedHeaders[fileType]
	if !ok {
		return nil, fmt.Errorf("%w %q, supported: %s", domain.ErrUnknownFileType, fileType, strings.Join(fileTypes(), ", "))
	}
	return required, nil
}

// UploadInput - загружаемый CSV файл
type UploadInput struct {
	FileType   string
	FileName   string
	UploadedBy string
	Body       io.Reader
}

// UploadService определяет интерфейс проверки и учёта загрузок
type UploadService interface {
	MissingHeaders(fileType string, header []string) ([]string, error)
	Upload(ctx context.Context, in UploadInput) (*domain.UploadRecord, error)
	History(ctx context.Context, fileType, month string) ([]domain.UploadRecord, error)
}

type uploadService struct {
	uploadRepo repository.UploadRepository
	now        func() time.Time
}

// NewUploadService создаёт новый экземпляр сервиса
func NewUploadService(uploadRepo repository.UploadRepository) UploadService {
	return &uploadService{
		uploadRepo: uploadRepo,
		now:        time.Now,
	}
}

// MissingHeaders возвращает обязательные колонки, отсутствующие в строке заголовков.
// Заголовки сравниваются без учёта регистра и пробелов по краям.
func (s *uploadService) MissingHeaders(fileType string, header []string) ([]string, error) {
	required, err := schemaFor(fileType)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		present[strings.ToLower(strings.TrimSpace(h))] = true
	}

	missing := []string{}
	for _, h := range required {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	return missing, nil
}

// Upload проверяет заголовки файла, считает строки данных и записывает загрузку в историю
func (s *uploadService) Upload(ctx context.Context, in UploadInput) (*domain.UploadRecord, error) {
	if _, err := schemaFor(in.FileType); err != nil {
		return nil, err
	}

	reader := csv.NewReader(in.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyFile
		}
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrInvalidInput, err)
	}

	missing, err := s.MissingHeaders(in.FileType, header)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &domain.MissingHeadersError{FileType: in.FileType, Missing: missing}
	}

	rows := 0
	for {
		_, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row %d: %v", domain.ErrInvalidInput, rows+1, err)
		}
		rows++
	}

	now := s.now()
	rec := &domain.UploadRecord{
		ID:          "upload-" + uuid.NewString(),
		FileType:    in.FileType,
		FileName:    in.FileName,
		UploadedAt:  now,
		Month:       now.Format("January 2006"),
		RecordCount: rows,
		Status:      UploadStatusCompleted,
		UploadedBy:  in.UploadedBy,
	}
	if err := s.uploadRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *uploadService) History(ctx context.Context, fileType, month string) ([]domain.UploadRecord, error) {
	if fileType != "" {
		if _, err := schemaFor(fileType); err != nil {
			return nil, err
		}
	}
	return s.uploadRepo.List(ctx, fileType, month)
}
