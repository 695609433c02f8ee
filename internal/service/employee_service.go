package service

import (
	"context"
	"errors"
	"strings"

	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetDetails(ctx context.Context, id string) (*domain.EmployeeDetails, error)
	OrgChart(ctx context.Context, supervisorIDs []string) ([]*OrgNode, error)
}

type employeeService struct {
	empRepo        repository.EmployeeRepository
	reportRepo     repository.ReportRepository
	empMappingRepo repository.EmployeeMappingRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	reportRepo repository.ReportRepository,
	empMappingRepo repository.EmployeeMappingRepository,
) EmployeeService {
	return &employeeService{
		empRepo:        empRepo,
		reportRepo:     reportRepo,
		empMappingRepo: empMappingRepo,
	}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) GetDetails(ctx context.Context, id string) (*domain.EmployeeDetails, error) {
	emp, err := s.empRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	details := &domain.EmployeeDetails{
		Employee: *emp,
		Reports:  []domain.MappedReport{},
	}

	// Руководитель, отсутствующий в справочнике, просто не показывается
	if emp.SupervisorID != nil {
		supervisor, err := s.empRepo.GetByID(ctx, *emp.SupervisorID)
		switch {
		case err == nil:
			details.Supervisor = supervisor
		case !errors.Is(err, domain.ErrEmployeeNotFound):
			return nil, err
		}
	}

	mappings, err := s.empMappingRepo.ListIncludedByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	reports := make(map[string]*domain.Report)
	for _, m := range mappings {
		report, ok := reports[m.ReportName]
		if !ok {
			report, err = s.reportRepo.GetByName(ctx, m.ReportName)
			if err != nil && !errors.Is(err, domain.ErrReportNotFound) {
				return nil, err
			}
			reports[m.ReportName] = report
		}
		if report == nil {
			continue
		}
		details.Reports = append(details.Reports, domain.MappedReport{
			ID:          report.ID,
			Name:        report.Name,
			Region:      report.Region,
			MappingType: m.MappingType,
		})
	}

	return details, nil
}

func (s *employeeService) OrgChart(ctx context.Context, supervisorIDs []string) ([]*OrgNode, error) {
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildOrgChart(employees, supervisorIDs), nil
}
