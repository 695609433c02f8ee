package domain

import (
	"errors"
	"fmt"
)

// Категории ошибок
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Определение бизнес-ошибок
var (
	ErrReportNotFound         = fmt.Errorf("report %w", ErrNotFound)
	ErrEmployeeNotFound       = fmt.Errorf("employee %w", ErrNotFound)
	ErrMappingNotFound        = fmt.Errorf("mapping %w", ErrNotFound)
	ErrInvalidMappingType     = fmt.Errorf("%w: unknown mapping type", ErrInvalidInput)
	ErrInvalidInclusionFlag   = fmt.Errorf("%w: inclusion flag must be Yes or No", ErrInvalidInput)
	ErrMappingTargetRequired  = fmt.Errorf("%w: either employeeId or mappingValue is required", ErrInvalidInput)
	ErrMappingTargetAmbiguous = fmt.Errorf("%w: employeeId and mappingValue are mutually exclusive", ErrInvalidInput)
	ErrReportNameRequired     = fmt.Errorf("%w: report name is required", ErrInvalidInput)
	ErrMappingFieldsRequired  = fmt.Errorf("%w: employeeId, reportName and mappingValue are required", ErrInvalidInput)
	ErrUnknownFileType        = fmt.Errorf("%w: unknown file type", ErrInvalidInput)
	ErrEmptyFile              = fmt.Errorf("%w: file is empty", ErrInvalidInput)
	ErrMissingHeaders         = fmt.Errorf("%w: missing required headers", ErrInvalidInput)
)

// MissingHeadersError перечисляет отсутствующие колонки загруженного файла
type MissingHeadersError struct {
	FileType string
	Missing  []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("%s: %s file is missing %v", ErrMissingHeaders.Error(), e.FileType, e.Missing)
}

func (e *MissingHeadersError) Unwrap() error {
	return ErrMissingHeaders
}
