package handlers

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"cop_dashboard/config"
	_ "cop_dashboard/docs" // swagger spec
	"cop_dashboard/services"
	"cop_dashboard/views"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, service *services.DashboardService, renderer *views.Renderer) {
	d := NewDashboard(cfg, service, renderer)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", d.Home)
	r.Get("/actors", d.Actors)
	r.Get("/categories", d.Categories)
	r.Get("/most-active-users", d.ActiveUsers)
	r.Get("/other-stats", d.OtherStats)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", d.OptionsHandler)
		r.Get("/kpis", d.KPIsHandler)
		r.Get("/authors", d.AuthorsHandler)
		r.Get("/authors/by-category", d.AuthorsByCategoryHandler)
		r.Get("/domains", d.DomainsHandler)
		r.Get("/categories", d.CategoriesHandler)
		r.Get("/categories/timeline", d.TimelineHandler)
		r.Get("/categories/evolution", d.EvolutionHandler)
		r.Get("/terms", d.TermsHandler)
	})
}
