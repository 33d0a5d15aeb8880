// Package main prints dashboard aggregates as text tables.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"cop_dashboard/config"
	"cop_dashboard/db"
	"cop_dashboard/logger"
	"cop_dashboard/report"
	"cop_dashboard/repository"
	"cop_dashboard/services"
)

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	configFile := flag.String("config", config.DefaultConfigFile, "Path to YAML configuration file")
	kind := flag.String("report", report.KindAuthors, "Report to print: "+strings.Join(report.Kinds, ", "))
	dataset := flag.String("dataset", config.DatasetTweets, "Tweet dataset: tweets or active_users")
	stat := flag.String("stat", services.StatEntities, "Terms report statistic: entities or words")
	langs := flag.String("lang", "", "Comma separated language codes (default: all)")
	cops := flag.String("cop", "", "Comma separated COP editions (default: all)")
	category := flag.String("category", services.AllCategories, "Category of the authors report")
	top := flag.Int("top", 10, "Number of rows of ranked reports")
	flag.Parse()

	if !slices.Contains(report.Kinds, *kind) {
		fmt.Fprintf(os.Stderr, "unknown report %q, expected one of %s\n", *kind, strings.Join(report.Kinds, ", "))
		os.Exit(2)
	}

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		log.Printf("Failed to load %s: %v (proceeding with defaults)", *configFile, err)
		cfg = config.Load()
	}
	// diagnostics go to stderr so the table can be piped
	logger.Logger = logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, report.Options{
		Kind:     *kind,
		Dataset:  *dataset,
		Stat:     *stat,
		Filter:   services.NewFilter(splitList(*langs), splitList(*cops)),
		Category: *category,
		Top:      *top,
	}); err != nil {
		logger.Error("report failed", "report", *kind, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts report.Options) error {
	var conn *sql.DB
	if cfg.Data.UsesSQL() {
		var err error
		if conn, err = db.OpenWithConfig(cfg); err != nil {
			return err
		}
		defer conn.Close()
	}

	svc := services.NewDashboardService(repository.NewDatasetRepository(cfg, conn))
	table, err := report.Build(context.Background(), svc, opts)
	if err != nil {
		return err
	}
	return table.Render(os.Stdout)
}
