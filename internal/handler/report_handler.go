package handler

import (
	"log/slog"
	"net/http"

	"github.com/report-mapping-api/internal/dto"
	"github.com/report-mapping-api/internal/service"
)

type ReportHandler struct {
	responder
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		responder:     newResponder(logger),
		reportService: reportService,
	}
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		resp[i] = toReportResponse(&reports[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ReportHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetByName(r.Context(), pathParam(r, "reportName"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toReportResponse(report))
}

// Employees возвращает сотрудников, попадающих в отчёт
func (h *ReportHandler) Employees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.reportService.ResolveEmployees(r.Context(), pathParam(r, "reportName"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponses(employees))
}

func (h *ReportHandler) OrgChart(w http.ResponseWriter, r *http.Request) {
	forest, err := h.reportService.OrgChart(r.Context(), pathParam(r, "reportName"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toOrgChartResponse(forest))
}
