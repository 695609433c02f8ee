package handler

import (
	"log/slog"
	"net/http"

	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/dto"
	"github.com/report-mapping-api/internal/service"
)

type MappingHandler struct {
	responder
	mappingService service.MappingService
}

func NewMappingHandler(mappingService service.MappingService, logger *slog.Logger) *MappingHandler {
	return &MappingHandler{
		responder:      newResponder(logger),
		mappingService: mappingService,
	}
}

func (h *MappingHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMappingRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.mappingService.Add(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("mapping added",
		slog.String("report", result.Mapping.ReportName),
		slog.String("mapping_type", result.Mapping.MappingType),
		slog.String("mapping_id", result.Mapping.MappingID),
	)

	h.respondJSON(w, http.StatusOK, dto.AddMappingResponse{
		Success:         true,
		Message:         "Mapping added successfully",
		Mapping:         result.Mapping,
		EmployeeMapping: result.EmployeeMapping,
	})
}

// ListActive отдаёт записи с active_flag = Y; тот же список используется для выгрузки
func (h *MappingHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	records, err := h.mappingService.ListActive(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if records == nil {
		records = []domain.MappingRecord{}
	}
	h.respondJSON(w, http.StatusOK, records)
}

func (h *MappingHandler) ListEmployeeMappings(w http.ResponseWriter, r *http.Request) {
	reportName := r.URL.Query().Get("reportName")
	if reportName == "" {
		h.respondError(w, http.StatusBadRequest, "report name is required", "")
		return
	}

	mappings, err := h.mappingService.ListEmployeeMappings(r.Context(), reportName)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if mappings == nil {
		mappings = []domain.EmployeeMapping{}
	}
	h.respondJSON(w, http.StatusOK, mappings)
}

func (h *MappingHandler) SetInclusionFlag(w http.ResponseWriter, r *http.Request) {
	var req dto.SetInclusionFlagRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.mappingService.SetInclusionFlag(r.Context(), req.MappingID, req.InclusionFlag)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, m)
}

func (h *MappingHandler) SaveChanges(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveMappingChangesRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	mappings := make([]domain.EmployeeMapping, len(req.Mappings))
	for i, in := range req.Mappings {
		mappings[i] = in.ToDomain()
	}

	replaced, err := h.mappingService.SaveChanges(r.Context(), mappings)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.SaveMappingChangesResponse{Success: true, Replaced: replaced})
}

func (h *MappingHandler) ListIncomplete(w http.ResponseWriter, r *http.Request) {
	employees, err := h.mappingService.ListIncomplete(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeWithMappingsResponse, len(employees))
	for i := range employees {
		resp[i] = dto.EmployeeWithMappingsResponse{
			EmployeeResponse: toEmployeeResponse(&employees[i].Employee),
			ReportCount:      employees[i].ReportCount,
			MappedReports:    employees[i].MappedReports,
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}
