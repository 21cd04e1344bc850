package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gridtools/cablecalc/internal/api/handlers"
	"github.com/gridtools/cablecalc/internal/api/middleware"
	"github.com/gridtools/cablecalc/internal/config"
	"github.com/gridtools/cablecalc/internal/datasheet"
	"github.com/gridtools/cablecalc/internal/ocr"
	"github.com/gridtools/cablecalc/internal/session"
	"github.com/gridtools/cablecalc/internal/storage"
)

type Router struct {
	mux      *chi.Mux
	cfg      *config.Config
	store    storage.Store
	ocr      *ocr.Extractor
	sessions *session.Manager
}

func NewRouter(cfg *config.Config, store storage.Store, extractor *ocr.Extractor) *Router {
	return &Router{
		mux:      chi.NewRouter(),
		cfg:      cfg,
		store:    store,
		ocr:      extractor,
		sessions: session.NewManager(cfg.Session.Secret),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.Origins))

	rl := middleware.NewRateLimiter(10, 30)
	r.Use(rl.Limit)

	// Health endpoints
	health := handlers.NewHealthHandler(rt.ocr)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	r.Get("/", handlers.Index)

	svc := datasheet.NewService(rt.store, rt.ocr, nil)
	dsH := handlers.NewDatasheetHandler(svc, rt.sessions, rt.store, rt.cfg.Upload.MaxBytes)
	repH := handlers.NewReportHandler(rt.sessions, rt.store)

	r.Route("/api", func(r chi.Router) {
		r.Post("/extract", dsH.Extract)
		r.Post("/generate_conductor_pdf", repH.GenerateConductor)
		r.Post("/generate_sheath_pdf", repH.GenerateSheath)
		r.Post("/generate_merged_pdf", repH.GenerateMerged)
		r.Post("/generate_pdf", repH.GenerateSummary)
	})

	return r
}
