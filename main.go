package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cop_dashboard/config"
	"cop_dashboard/db"
	"cop_dashboard/handlers"
	"cop_dashboard/logger"
	"cop_dashboard/repository"
	"cop_dashboard/services"
	"cop_dashboard/views"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	var conn *sql.DB
	if cfg.Data.UsesSQL() {
		var err error
		if conn, err = db.OpenWithConfig(cfg); err != nil {
			logger.Error("open database failed", "driver", cfg.DB.Driver, "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		logger.Info("database connected",
			"driver", cfg.DB.Driver,
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)
	}

	repo := repository.NewDatasetRepository(cfg, conn)
	for _, name := range repo.Missing() {
		ds, _ := cfg.Data.Lookup(name)
		logger.Warn("dataset file not found", "dataset", name, "path", ds.Path)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Error("load templates failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg, services.NewDashboardService(repo), renderer)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", serverAddr, "data_dir", cfg.Data.BaseDir)
	logger.Info("swagger docs available", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	if err := http.ListenAndServe(serverAddr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
