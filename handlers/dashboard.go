package handlers

import (
	"net/http"

	"cop_dashboard/config"
	"cop_dashboard/services"
	"cop_dashboard/utils"
	"cop_dashboard/views"
)

// Dashboard serves the HTML pages and the JSON API.
type Dashboard struct {
	cfg      *config.Config
	service  *services.DashboardService
	renderer *views.Renderer
}

func NewDashboard(cfg *config.Config, service *services.DashboardService, renderer *views.Renderer) *Dashboard {
	return &Dashboard{cfg: cfg, service: service, renderer: renderer}
}

func (d *Dashboard) limits() views.Limits {
	return views.Limits{
		TopNMax:    d.cfg.Dashboard.TopNMax,
		DomainsMin: d.cfg.Dashboard.DomainsMin,
		DomainsMax: d.cfg.Dashboard.DomainsMax,
		TermsMin:   d.cfg.Dashboard.TermsMin,
		TermsMax:   d.cfg.Dashboard.TermsMax,
	}
}

// pageError renders the error page with the status matching err.
func (d *Dashboard) pageError(w http.ResponseWriter, r *http.Request, title string, err error) {
	code := errorCode(err)
	logFailure(r, code, err)
	status := utils.HTTPStatus(code)
	d.renderer.Write(w, status, views.PageError, views.ErrorPage(title, r.URL.Path, status, err))
}

func (d *Dashboard) Home(w http.ResponseWriter, r *http.Request) {
	d.renderer.Write(w, http.StatusOK, views.PageHome, views.HomePage())
}

func (d *Dashboard) Actors(w http.ResponseWriter, r *http.Request) {
	const title = "Actors"
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	report, err := d.service.Actors(r.Context(), sel)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	d.renderer.Write(w, http.StatusOK, views.PageActors, views.ActorsPage(report, sel, d.limits()))
}

func (d *Dashboard) Categories(w http.ResponseWriter, r *http.Request) {
	const title = "Categories"
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	report, err := d.service.Categories(r.Context(), sel)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	d.renderer.Write(w, http.StatusOK, views.PageCategories, views.CategoriesPage(report, sel))
}

func (d *Dashboard) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	const title = "Most active users"
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	report, err := d.service.ActiveUsers(r.Context(), sel)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	d.renderer.Write(w, http.StatusOK, views.PageActiveUsers, views.ActiveUsersPage(report, sel))
}

func (d *Dashboard) OtherStats(w http.ResponseWriter, r *http.Request) {
	const title = "Other stats"
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	report, err := d.service.OtherStats(r.Context(), sel)
	if err != nil {
		d.pageError(w, r, title, err)
		return
	}
	d.renderer.Write(w, http.StatusOK, views.PageOtherStats, views.OtherStatsPage(report, sel, d.limits()))
}
