package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/report-mapping-api/internal/middleware"
)

// Handlers - набор хендлеров, которые подключает роутер
type Handlers struct {
	Reports   *ReportHandler
	Employees *EmployeeHandler
	Mappings  *MappingHandler
	Uploads   *UploadHandler
}

// Router настраивает маршруты API
type Router struct {
	mux            chi.Router
	logger         *slog.Logger
	handlers       Handlers
	allowedOrigins []string
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		mux:            chi.NewRouter(),
		logger:         logger,
		handlers:       handlers,
		allowedOrigins: allowedOrigins,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.Use(chimw.RequestID)
	r.mux.Use(chimw.RealIP)
	r.mux.Use(middleware.Recoverer(r.logger))
	r.mux.Use(middleware.Logger(r.logger))
	r.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.mux.Use(middleware.ContentType)

	base := newResponder(r.logger)
	r.mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		base.respondError(w, http.StatusNotFound, "not found", "")
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		base.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	// Health check
	r.mux.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.mux.Route("/reports", func(rt chi.Router) {
		rt.Get("/", r.handlers.Reports.List)
		rt.Get("/{reportName}", r.handlers.Reports.GetByName)
		rt.Get("/{reportName}/employees", r.handlers.Reports.Employees)
		rt.Get("/{reportName}/org-chart", r.handlers.Reports.OrgChart)
	})

	r.mux.Route("/employees", func(rt chi.Router) {
		rt.Get("/", r.handlers.Employees.List)
		rt.Get("/{employeeId}", r.handlers.Employees.GetDetails)
	})
	r.mux.Get("/org-chart", r.handlers.Employees.OrgChart)

	r.mux.Route("/employee-mappings", func(rt chi.Router) {
		rt.Get("/", r.handlers.Mappings.ListEmployeeMappings)
		rt.Patch("/", r.handlers.Mappings.SetInclusionFlag)
		rt.Put("/", r.handlers.Mappings.SaveChanges)
	})

	r.mux.Route("/mappings", func(rt chi.Router) {
		rt.Get("/", r.handlers.Mappings.ListActive)
		rt.Post("/", r.handlers.Mappings.Add)
		rt.Get("/export", r.handlers.Mappings.ListActive)
	})
	r.mux.Get("/incomplete-mappings", r.handlers.Mappings.ListIncomplete)

	r.mux.Route("/uploads", func(rt chi.Router) {
		rt.Get("/", r.handlers.Uploads.History)
		rt.Post("/", r.handlers.Uploads.Upload)
		rt.Post("/validate", r.handlers.Uploads.Validate)
	})

	return r.mux
}
