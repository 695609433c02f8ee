package domain

import (
	"strings"
	"time"
)

// Флаги включения и активности записей сопоставления
const (
	InclusionYes = "Yes"
	InclusionNo  = "No"

	ActiveYes = "Y"
	ActiveNo  = "N"
)

// Employee представляет сотрудника
type Employee struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name         string     `json:"name" gorm:"type:varchar(200);not null"`
	TeamID       string     `json:"teamId" gorm:"type:varchar(64);index"`
	TeamName     string     `json:"teamName" gorm:"type:varchar(200)"`
	AreaID       string     `json:"areaId" gorm:"type:varchar(64);index"`
	CityID       string     `json:"cityId" gorm:"type:varchar(64);index"`
	CityName     string     `json:"cityName" gorm:"type:varchar(200)"`
	CountryID    string     `json:"countryId" gorm:"type:varchar(64);index"`
	CountryName  string     `json:"countryName" gorm:"type:varchar(200)"`
	SupervisorID *string    `json:"supervisorId" gorm:"type:varchar(64);index"`
	Title        string     `json:"title" gorm:"type:varchar(200)"`
	Email        *string    `json:"email,omitempty" gorm:"type:varchar(200)"`
	Phone        *string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	HiredAt      *time.Time `json:"hiredAt,omitempty" gorm:"type:date"`
	SortOrder    int        `json:"-" gorm:"not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Location возвращает строку вида "Город, Страна"
func (e *Employee) Location() string {
	parts := make([]string, 0, 2)
	if e.CityName != "" {
		parts = append(parts, e.CityName)
	}
	if e.CountryName != "" && e.CountryName != e.CityName {
		parts = append(parts, e.CountryName)
	}
	return strings.Join(parts, ", ")
}

// Report представляет отчёт - именованную группу сотрудников
type Report struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name      string `json:"name" gorm:"type:varchar(200);not null;uniqueIndex"`
	Region    string `json:"region" gorm:"type:varchar(50)"`
	SortOrder int    `json:"-" gorm:"not null;default:0"`

	Supervisors []ReportSupervisor `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`

	// Mappings не хранится в таблице reports: собирается из активных
	// и включённых записей MappingRecord с тем же именем отчёта.
	Mappings []Mapping `json:"mappings" gorm:"-"`
}

// TableName задаёт имя таблицы для GORM
func (Report) TableName() string {
	return "reports"
}

// SupervisorIDs возвращает идентификаторы руководителей в порядке хранения
func (r *Report) SupervisorIDs() []string {
	ids := make([]string, 0, len(r.Supervisors))
	for _, s := range r.Supervisors {
		ids = append(ids, s.EmployeeID)
	}
	return ids
}

// ReportSupervisor связывает отчёт с корневым руководителем его оргструктуры
type ReportSupervisor struct {
	ReportID   string `gorm:"primaryKey;type:varchar(64)"`
	EmployeeID string `gorm:"primaryKey;type:varchar(64)"`
	Position   int    `gorm:"not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (ReportSupervisor) TableName() string {
	return "report_supervisors"
}

// Mapping - предикат отбора сотрудников (тип + значение)
type Mapping struct {
	Type  MappingType `json:"type"`
	Value string      `json:"value"`
}

// MappingRecord - агрегированная запись критерия отчёта
type MappingRecord struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	ReportName    string `json:"report_name" gorm:"type:varchar(200);not null;index"`
	MappingType   string `json:"mapping_type" gorm:"type:varchar(32);not null"`
	MappingID     string `json:"mapping_id" gorm:"column:mapping_id;type:varchar(64);not null"`
	InclusionFlag string `json:"inclusion_flag" gorm:"type:varchar(3);not null"`
	ActiveFlag    string `json:"active_flag" gorm:"type:varchar(1);not null"`
	SortOrder     int    `json:"-" gorm:"not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (MappingRecord) TableName() string {
	return "mappings"
}

// EmployeeMapping - материализованная связь сотрудника с отчётом
type EmployeeMapping struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	EmployeeID    string `json:"employeeId" gorm:"type:varchar(64);not null;index"`
	EmployeeName  string `json:"employeeName" gorm:"type:varchar(200)"`
	ReportName    string `json:"reportName" gorm:"type:varchar(200);not null;index"`
	MappingType   string `json:"mappingType" gorm:"type:varchar(32);not null"`
	MappingValue  string `json:"mappingValue" gorm:"type:varchar(64);not null"`
	InclusionFlag string `json:"inclusionFlag" gorm:"type:varchar(3);not null"`
	SortOrder     int    `json:"-" gorm:"not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (EmployeeMapping) TableName() string {
	return "employee_mappings"
}

// EmployeeWithMappings - сотрудник с количеством активных связей
type EmployeeWithMappings struct {
	Employee
	ReportCount   int     `json:"report_count"`
	MappedReports *string `json:"mapped_reports"`
}

// EmployeeDetails - карточка сотрудника
type EmployeeDetails struct {
	Employee   Employee
	Supervisor *Employee
	Reports    []MappedReport
}

// MappedReport - отчёт, к которому привязан сотрудник
type MappedReport struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Region      string `json:"region"`
	MappingType string `json:"mappingType"`
}

// UploadRecord - запись истории загрузок CSV
type UploadRecord struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	FileType    string    `json:"fileType" gorm:"type:varchar(32);not null;index"`
	FileName    string    `json:"fileName" gorm:"type:varchar(255);not null"`
	UploadedAt  time.Time `json:"uploadDate" gorm:"not null"`
	Month       string    `json:"month" gorm:"type:varchar(32);not null"`
	RecordCount int       `json:"recordCount" gorm:"not null"`
	Status      string    `json:"status" gorm:"type:varchar(32);not null"`
	UploadedBy  string    `json:"uploadedBy" gorm:"type:varchar(200)"`
}

// TableName задаёт имя таблицы для GORM
func (UploadRecord) TableName() string {
	return "uploads"
}
