package service

import (
	"context"
	"strings"

	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/repository"
)

// ReportService определяет интерфейс бизнес-логики для отчётов
type ReportService interface {
	List(ctx context.Context) ([]domain.Report, error)
	GetByName(ctx context.Context, name string) (*domain.Report, error)
	ResolveEmployees(ctx context.Context, name string) ([]domain.Employee, error)
	OrgChart(ctx context.Context, name string) ([]*OrgNode, error)
}

type reportService struct {
	reportRepo  repository.ReportRepository
	empRepo     repository.EmployeeRepository
	mappingRepo repository.MappingRepository
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(
	reportRepo repository.ReportRepository,
	empRepo repository.EmployeeRepository,
	mappingRepo repository.MappingRepository,
) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		empRepo:     empRepo,
		mappingRepo: mappingRepo,
	}
}

func (s *reportService) List(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.mappingRepo.ListEffective(ctx)
	if err != nil {
		return nil, err
	}

	byReport := groupMappings(records)
	for i := range reports {
		reports[i].Mappings = byReport[reports[i].Name]
		if reports[i].Mappings == nil {
			reports[i].Mappings = []domain.Mapping{}
		}
	}
	return reports, nil
}

func (s *reportService) GetByName(ctx context.Context, name string) (*domain.Report, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrReportNameRequired
	}

	report, err := s.reportRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	records, err := s.mappingRepo.ListEffective(ctx, report.Name)
	if err != nil {
		return nil, err
	}

	report.Mappings = groupMappings(records)[report.Name]
	if report.Mappings == nil {
		report.Mappings = []domain.Mapping{}
	}
	return report, nil
}

// ResolveEmployees возвращает сотрудников, подходящих хотя бы под один критерий отчёта.
// Отчёт без критериев не включает никого.
func (s *reportService) ResolveEmployees(ctx context.Context, name string) ([]domain.Employee, error) {
	report, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	result := []domain.Employee{}
	if len(report.Mappings) == 0 {
		return result, nil
	}

	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range employees {
		if domain.MatchesAny(&employees[i], report.Mappings) {
			result = append(result, employees[i])
		}
	}
	return result, nil
}

func (s *reportService) OrgChart(ctx context.Context, name string) ([]*OrgNode, error) {
	report, err := s.reportRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return BuildOrgChart(employees, report.SupervisorIDs()), nil
}

// groupMappings раскладывает записи по отчётам, сохраняя порядок
func groupMappings(records []domain.MappingRecord) map[string][]domain.Mapping {
	result := make(map[string][]domain.Mapping)
	for i := range records {
		m, ok := domain.MappingFromRecord(&records[i])
		if !ok {
			continue
		}
		result[records[i].ReportName] = append(result[records[i].ReportName], m)
	}
	return result
}
