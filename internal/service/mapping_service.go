package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/dto"
	"github.com/report-mapping-api/internal/repository"
)

// AddMappingResult - итог добавления критерия.
// EmployeeMapping равен nil, если ни один сотрудник не был определён.
type AddMappingResult struct {
	Mapping         *domain.MappingRecord
	EmployeeMapping *domain.EmployeeMapping
}

// MappingService определяет интерфейс бизнес-логики для сопоставлений
type MappingService interface {
	Add(ctx context.Context, req *dto.AddMappingRequest) (*AddMappingResult, error)
	ListActive(ctx context.Context) ([]domain.MappingRecord, error)
	ListEmployeeMappings(ctx context.Context, reportName string) ([]domain.EmployeeMapping, error)
	SetInclusionFlag(ctx context.Context, mappingID, flag string) (*domain.EmployeeMapping, error)
	SaveChanges(ctx context.Context, mappings []domain.EmployeeMapping) (int, error)
	ListIncomplete(ctx context.Context) ([]domain.EmployeeWithMappings, error)
}

type mappingService struct {
	tx             repository.Transactor
	reportRepo     repository.ReportRepository
	empRepo        repository.EmployeeRepository
	mappingRepo    repository.MappingRepository
	empMappingRepo repository.EmployeeMappingRepository
	minReports     int
}

// NewMappingService создаёт новый экземпляр сервиса.
// minReports - порог числа включённых связей для списка недосопоставленных.
func NewMappingService(
	tx repository.Transactor,
	reportRepo repository.ReportRepository,
	empRepo repository.EmployeeRepository,
	mappingRepo repository.MappingRepository,
	empMappingRepo repository.EmployeeMappingRepository,
	minReports int,
) MappingService {
	return &mappingService{
		tx:             tx,
		reportRepo:     reportRepo,
		empRepo:        empRepo,
		mappingRepo:    mappingRepo,
		empMappingRepo: empMappingRepo,
		minReports:     minReports,
	}
}

// Add добавляет критерий к отчёту и материализует связь с сотрудником.
// Обе записи обновляются в одной транзакции.
func (s *mappingService) Add(ctx context.Context, req *dto.AddMappingRequest) (*AddMappingResult, error) {
	reportName := strings.TrimSpace(req.ReportName)
	employeeID := strings.TrimSpace(req.EmployeeID)
	mappingValue := strings.TrimSpace(req.MappingValue)

	if reportName == "" {
		return nil, domain.ErrReportNameRequired
	}

	mappingType, err := domain.ParseMappingType(req.MappingType)
	if err != nil {
		return nil, err
	}

	switch {
	case employeeID == "" && mappingValue == "":
		return nil, domain.ErrMappingTargetRequired
	case employeeID != "" && mappingValue != "":
		return nil, domain.ErrMappingTargetAmbiguous
	}

	var result AddMappingResult
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		report, err := s.reportRepo.GetByName(ctx, reportName)
		if err != nil {
			return err
		}

		var emp *domain.Employee
		if employeeID != "" {
			emp, err = s.empRepo.GetByID(ctx, employeeID)
			if err != nil {
				return err
			}
			mappingValue, _ = mappingType.ValueOf(emp)
		} else {
			// Сотрудник нужен только для имени в связи; его отсутствие не ошибка
			emp, err = s.empRepo.FindFirstByMapping(ctx, domain.Mapping{Type: mappingType, Value: mappingValue})
			if err != nil {
				return err
			}
		}

		result.Mapping, err = s.upsertMappingRecord(ctx, report.Name, mappingType, mappingValue)
		if err != nil {
			return err
		}

		if emp != nil {
			result.EmployeeMapping, err = s.upsertEmployeeMapping(ctx, report.Name, mappingType, mappingValue, emp)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *mappingService) upsertMappingRecord(ctx context.Context, reportName string, mappingType domain.MappingType, value string) (*domain.MappingRecord, error) {
	rec, err := s.mappingRepo.FindByKey(ctx, reportName, mappingType.Snake(), value)
	if err != nil {
		return nil, err
	}

	if rec != nil {
		rec.InclusionFlag = domain.InclusionYes
		rec.ActiveFlag = domain.ActiveYes
		return rec, s.mappingRepo.Update(ctx, rec)
	}

	rec = &domain.MappingRecord{
		ID:            "map-" + uuid.NewString(),
		ReportName:    reportName,
		MappingType:   mappingType.Snake(),
		MappingID:     value,
		InclusionFlag: domain.InclusionYes,
		ActiveFlag:    domain.ActiveYes,
	}
	return rec, s.mappingRepo.Create(ctx, rec)
}

func (s *mappingService) upsertEmployeeMapping(ctx context.Context, reportName string, mappingType domain.MappingType, value string, emp *domain.Employee) (*domain.EmployeeMapping, error) {
	m, err := s.empMappingRepo.FindByKey(ctx, reportName, mappingType.String(), value, emp.ID)
	if err != nil {
		return nil, err
	}

	if m != nil {
		m.InclusionFlag = domain.InclusionYes
		return m, s.empMappingRepo.Update(ctx, m)
	}

	m = &domain.EmployeeMapping{
		ID:            "em-" + uuid.NewString(),
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		ReportName:    reportName,
		MappingType:   mappingType.String(),
		MappingValue:  value,
		InclusionFlag: domain.InclusionYes,
	}
	return m, s.empMappingRepo.Create(ctx, m)
}

// ListActive возвращает записи с active_flag = Y
func (s *mappingService) ListActive(ctx context.Context) ([]domain.MappingRecord, error) {
	return s.mappingRepo.ListActive(ctx)
}

func (s *mappingService) ListEmployeeMappings(ctx context.Context, reportName string) ([]domain.EmployeeMapping, error) {
	reportName = strings.TrimSpace(reportName)
	if reportName == "" {
		return nil, domain.ErrReportNameRequired
	}
	return s.empMappingRepo.ListByReport(ctx, reportName)
}

// SetInclusionFlag меняет флаг включения одной связи; агрегированные записи не затрагиваются
func (s *mappingService) SetInclusionFlag(ctx context.Context, mappingID, flag string) (*domain.EmployeeMapping, error) {
	if err := validateInclusionFlag(flag); err != nil {
		return nil, err
	}

	var m *domain.EmployeeMapping
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.empMappingRepo.GetByID(ctx, strings.TrimSpace(mappingID))
		if err != nil {
			return err
		}
		m.InclusionFlag = flag
		return s.empMappingRepo.Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// SaveChanges заменяет существующие связи по идентификатору.
// Связи с неизвестными идентификаторами молча пропускаются и не проверяются;
// ошибка в любой известной связи отменяет всю замену.
func (s *mappingService) SaveChanges(ctx context.Context, mappings []domain.EmployeeMapping) (int, error) {
	var replaced int
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		known := make([]domain.EmployeeMapping, 0, len(mappings))
		for i := range mappings {
			if _, err := s.empMappingRepo.GetByID(ctx, mappings[i].ID); err != nil {
				if errors.Is(err, domain.ErrMappingNotFound) {
					continue
				}
				return err
			}
			if err := validateEmployeeMapping(&mappings[i]); err != nil {
				return err
			}
			known = append(known, mappings[i])
		}

		var err error
		replaced, err = s.empMappingRepo.ReplaceExisting(ctx, known)
		return err
	})
	if err != nil {
		return 0, err
	}
	return replaced, nil
}

// ListIncomplete считает включённые связи каждого сотрудника и возвращает тех,
// у кого их меньше порога.
func (s *mappingService) ListIncomplete(ctx context.Context) ([]domain.EmployeeWithMappings, error) {
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	mappings, err := s.empMappingRepo.ListIncluded(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	reportNames := make(map[string][]string)
	for _, m := range mappings {
		counts[m.EmployeeID]++
		if !slices.Contains(reportNames[m.EmployeeID], m.ReportName) {
			reportNames[m.EmployeeID] = append(reportNames[m.EmployeeID], m.ReportName)
		}
	}

	result := []domain.EmployeeWithMappings{}
	for _, emp := range employees {
		count := counts[emp.ID]
		if count >= s.minReports {
			continue
		}

		item := domain.EmployeeWithMappings{Employee: emp, ReportCount: count}
		if names := reportNames[emp.ID]; len(names) > 0 {
			joined := strings.Join(names, ", ")
			item.MappedReports = &joined
		}
		result = append(result, item)
	}
	return result, nil
}

func validateEmployeeMapping(m *domain.EmployeeMapping) error {
	if strings.TrimSpace(m.EmployeeID) == "" || strings.TrimSpace(m.ReportName) == "" || strings.TrimSpace(m.MappingValue) == "" {
		return domain.ErrMappingFieldsRequired
	}
	if err := validateInclusionFlag(m.InclusionFlag); err != nil {
		return err
	}
	_, err := domain.ParseMappingType(m.MappingType)
	return err
}

func validateInclusionFlag(flag string) error {
	if flag != domain.InclusionYes && flag != domain.InclusionNo {
		return domain.ErrInvalidInclusionFlag
	}
	return nil
}
