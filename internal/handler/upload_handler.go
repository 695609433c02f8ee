package handler

import (
	"log/slog"
	"net/http"

	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/dto"
	"github.com/report-mapping-api/internal/service"
)

const maxUploadSize = 32 << 20

type UploadHandler struct {
	responder
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		responder:     newResponder(logger),
		uploadService: uploadService,
	}
}

// Upload принимает multipart-форму с полями file и fileType
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "No file provided", "")
		return
	}
	defer file.Close()

	rec, err := h.uploadService.Upload(r.Context(), service.UploadInput{
		FileType:   r.FormValue("fileType"),
		FileName:   header.Filename,
		UploadedBy: r.FormValue("uploadedBy"),
		Body:       file,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("file uploaded",
		slog.String("file_type", rec.FileType),
		slog.String("file_name", rec.FileName),
		slog.Int("rows", rec.RecordCount),
	)

	h.respondJSON(w, http.StatusOK, dto.UploadResponse{
		Success:  true,
		Message:  "File uploaded and processed successfully",
		RowCount: rec.RecordCount,
		Upload:   *rec,
	})
}

// Validate проверяет строку заголовков без загрузки файла
func (h *UploadHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateHeadersRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	missing, err := h.uploadService.MissingHeaders(req.FileType, req.Headers)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ValidateHeadersResponse{
		Valid:          len(missing) == 0,
		MissingHeaders: missing,
	})
}

func (h *UploadHandler) History(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := h.uploadService.History(r.Context(), query.Get("fileType"), query.Get("month"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if records == nil {
		records = []domain.UploadRecord{}
	}
	h.respondJSON(w, http.StatusOK, records)
}
