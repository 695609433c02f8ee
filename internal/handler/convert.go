package handler

import (
	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/dto"
	"github.com/report-mapping-api/internal/service"
)

const dateLayout = "2006-01-02"

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		Employee: *emp,
		Location: emp.Location(),
	}
}

func toEmployeeResponses(employees []domain.Employee) []dto.EmployeeResponse {
	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	return resp
}

func toReportResponse(report *domain.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:          report.ID,
		Name:        report.Name,
		Region:      report.Region,
		Supervisors: report.SupervisorIDs(),
		Mappings:    report.Mappings,
	}
}

func toEmployeeDetailsResponse(details *domain.EmployeeDetails) dto.EmployeeDetailsResponse {
	resp := dto.EmployeeDetailsResponse{
		EmployeeResponse: toEmployeeResponse(&details.Employee),
		Reports:          details.Reports,
	}

	if details.Employee.HiredAt != nil {
		joinDate := details.Employee.HiredAt.Format(dateLayout)
		resp.JoinDate = &joinDate
	}

	if details.Supervisor != nil {
		resp.Supervisor = &dto.SupervisorSummary{
			ID:   details.Supervisor.ID,
			Name: details.Supervisor.Name,
		}
	}

	return resp
}

func toOrgChartResponse(forest []*service.OrgNode) []dto.OrgNodeResponse {
	resp := make([]dto.OrgNodeResponse, len(forest))
	for i, node := range forest {
		resp[i] = dto.OrgNodeResponse{
			Employee: toEmployeeResponse(&node.Employee),
			Children: toOrgChartResponse(node.Children),
			Expanded: node.Expanded,
		}
	}
	return resp
}
