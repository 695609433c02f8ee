package dto

import (
	"github.com/report-mapping-api/internal/domain"
)

// AddMappingRequest - запрос на добавление критерия к отчёту.
// Нужно передать ровно одно из полей EmployeeID и MappingValue.
type AddMappingRequest struct {
	EmployeeID   string `json:"employeeId" validate:"required_without=MappingValue,excluded_with=MappingValue,max=64"`
	ReportName   string `json:"reportName" validate:"required,max=200"`
	MappingType  string `json:"mappingType" validate:"required,mapping_type"`
	MappingValue string `json:"mappingValue" validate:"required_without=EmployeeID,excluded_with=EmployeeID,max=64"`
}

// AddMappingResponse - результат добавления критерия
type AddMappingResponse struct {
	Success         bool                    `json:"success"`
	Message         string                  `json:"message"`
	Mapping         *domain.MappingRecord   `json:"mapping,omitempty"`
	EmployeeMapping *domain.EmployeeMapping `json:"employeeMapping,omitempty"`
}

// SetInclusionFlagRequest - запрос на переключение флага включения
type SetInclusionFlagRequest struct {
	MappingID     string `json:"mappingId" validate:"required"`
	InclusionFlag string `json:"inclusionFlag" validate:"required,oneof=Yes No"`
}

// SaveMappingChangesRequest - массовая замена связей сотрудник-отчёт
type SaveMappingChangesRequest struct {
	Mappings []EmployeeMappingInput `json:"mappings" validate:"required,dive"`
}

// EmployeeMappingInput - связь сотрудник-отчёт в запросе массовой замены.
// Поля проверяются сервисом только у связей с известным идентификатором.
type EmployeeMappingInput struct {
	ID            string `json:"id" validate:"required"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	ReportName    string `json:"reportName"`
	MappingType   string `json:"mappingType"`
	MappingValue  string `json:"mappingValue"`
	InclusionFlag string `json:"inclusionFlag"`
}

// ToDomain переводит входную связь в доменную модель
func (in EmployeeMappingInput) ToDomain() domain.EmployeeMapping {
	return domain.EmployeeMapping{
		ID:            in.ID,
		EmployeeID:    in.EmployeeID,
		EmployeeName:  in.EmployeeName,
		ReportName:    in.ReportName,
		MappingType:   in.MappingType,
		MappingValue:  in.MappingValue,
		InclusionFlag: in.InclusionFlag,
	}
}

// SaveMappingChangesResponse - результат массовой замены
type SaveMappingChangesResponse struct {
	Success  bool `json:"success"`
	Replaced int  `json:"replaced"`
}

// ValidateHeadersRequest - проверка строки заголовков без загрузки файла
type ValidateHeadersRequest struct {
	FileType string   `json:"fileType" validate:"required"`
	Headers  []string `json:"headers"`
}

// ValidateHeadersResponse - результат проверки заголовков
type ValidateHeadersResponse struct {
	Valid          bool     `json:"valid"`
	MissingHeaders []string `json:"missingHeaders"`
}

// UploadResponse - результат загрузки файла
type UploadResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	RowCount int                 `json:"rowCount"`
	Upload   domain.UploadRecord `json:"upload"`
}

// ReportResponse - ответ с данными отчёта
type ReportResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Region      string           `json:"region"`
	Supervisors []string         `json:"supervisors"`
	Mappings    []domain.Mapping `json:"mappings"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	domain.Employee
	Location string `json:"location"`
}

// EmployeeWithMappingsResponse - сотрудник с недостаточным числом связей
type EmployeeWithMappingsResponse struct {
	EmployeeResponse
	ReportCount   int     `json:"report_count"`
	MappedReports *string `json:"mapped_reports"`
}

// SupervisorSummary - краткие данные руководителя
type SupervisorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EmployeeDetailsResponse - карточка сотрудника
type EmployeeDetailsResponse struct {
	EmployeeResponse
	JoinDate   *string               `json:"joinDate,omitempty"`
	Supervisor *SupervisorSummary    `json:"supervisor,omitempty"`
	Reports    []domain.MappedReport `json:"reports"`
}

// OrgNodeResponse - узел оргструктуры
type OrgNodeResponse struct {
	Employee EmployeeResponse  `json:"employee"`
	Children []OrgNodeResponse `json:"children"`
	Expanded bool              `json:"expanded"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error          string   `json:"error"`
	Code           string   `json:"code"`
	Message        string   `json:"message,omitempty"`
	MissingHeaders []string `json:"missingHeaders,omitempty"`
}
