package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JonathanI21/Courses-solidaires-2/api/controllers"
	"github.com/JonathanI21/Courses-solidaires-2/api/middleware"
	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
	"github.com/JonathanI21/Courses-solidaires-2/internal/scanner"
	"github.com/JonathanI21/Courses-solidaires-2/internal/shoppinglist"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/config"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/metrics"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	Catalog catalog.Service
	Pricing pricing.Service
	Lists   shoppinglist.Service
	Scanner scanner.Service

	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	// Readiness probes by dependency name.
	Probes map[string]func() error
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Probes))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/products/{id}", controllers.GetProduct(deps.Catalog, logg))
			r.Get("/products/{id}/prices", controllers.GetProductPrices(deps.Catalog, logg))
			r.Get("/products/{id}/alternatives", controllers.GetProductAlternatives(deps.Catalog, logg))
			r.Get("/barcode/{code}", controllers.GetProductByBarcode(deps.Catalog, logg))
			r.Get("/stores", controllers.ListStores(deps.Catalog, logg))
			r.Get("/stores/{id}", controllers.GetStore(deps.Catalog, logg))
		})

		r.Route("/pricing", func(r chi.Router) {
			r.Get("/best/{productID}", controllers.GetBestOffer(deps.Pricing, logg))
			r.Post("/compare", controllers.CompareBaskets(deps.Pricing, logg))
		})

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", controllers.ListLists(deps.Lists, logg))
			r.Get("/draft", controllers.GetDraftList(deps.Lists, logg))
			r.Get("/validated", controllers.GetValidatedList(deps.Lists, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetList(deps.Lists, logg))
				r.Delete("/", controllers.DeleteList(deps.Lists, logg))
				r.Post("/items", controllers.AddListItem(deps.Lists, logg))
				r.Patch("/items/{itemID}", controllers.UpdateListItem(deps.Lists, logg))
				r.Delete("/items/{itemID}", controllers.RemoveListItem(deps.Lists, logg))
				r.Post("/validate", controllers.ValidateList(deps.Lists, logg))
				r.Post("/start", controllers.StartList(deps.Lists, logg))
				r.Post("/complete", controllers.CompleteList(deps.Lists, logg))
			})
		})

		r.Route("/scanner", func(r chi.Router) {
			r.Post("/sessions", controllers.StartScanSession(deps.Scanner, logg))
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetScanSession(deps.Scanner, logg))
				r.Post("/scan", controllers.Scan(deps.Scanner, logg))
				r.Post("/simulate", controllers.SimulateScan(deps.Scanner, logg))
				r.Post("/stop", controllers.StopScanSession(deps.Scanner, logg))
				r.Post("/complete", controllers.CompleteScanSession(deps.Scanner, logg))
			})
		})
	})

	return r
}
