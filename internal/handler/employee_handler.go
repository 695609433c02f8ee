package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/report-mapping-api/internal/service"
)

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  newResponder(logger),
		empService: empService,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponses(employees))
}

func (h *EmployeeHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.empService.GetDetails(r.Context(), pathParam(r, "employeeId"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeDetailsResponse(details))
}

// OrgChart строит дерево от руководителей из параметра supervisors (через запятую)
func (h *EmployeeHandler) OrgChart(w http.ResponseWriter, r *http.Request) {
	supervisorIDs := parseList(r.URL.Query().Get("supervisors"))
	if len(supervisorIDs) == 0 {
		h.respondError(w, http.StatusBadRequest, "supervisors query parameter is required", "")
		return
	}

	forest, err := h.empService.OrgChart(r.Context(), supervisorIDs)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toOrgChartResponse(forest))
}

func parseList(raw string) []string {
	var result []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
