package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "busca-pet/docs"
	mem "busca-pet/internal/adapters/storage/memory"
	pg "busca-pet/internal/adapters/storage/postgres"
	"busca-pet/internal/domain/pets"
	"busca-pet/internal/middleware"
	"busca-pet/internal/platform/logger"
	"busca-pet/internal/platform/metrics"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => se crea uno propio

	// Vacío => "*".
	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID(log))
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	var uow pets.UnitOfWork
	if opts.DB != nil {
		uow = pg.NewUnitOfWork(opts.DB, log)
	} else {
		uow = mem.NewUnitOfWork(mem.NewDB())
	}

	petsSvc := pets.NewService(uow, log, m)

	r.Route("/api", func(api chi.Router) {
		pets.RegisterRoutes(api, petsSvc)

		api.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/api/docs/index.html", http.StatusMovedPermanently)
		})
		api.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))
	})

	return r
}
