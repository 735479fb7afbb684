package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/export"
	"resume-builder/internal/store"
	"resume-builder/internal/templates"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	db, err := repository.Open(cfg.Storage.DBPath)
	if err != nil {
		logg.Fatal("storage not available", "path", cfg.Storage.DBPath, "error", err)
	}
	defer db.Close()

	storage := repository.NewStorage(db)
	docStore := store.New(storage)
	registry := templates.NewRegistry()
	selector := templates.NewSelector(storage.SelectedTemplate())

	renderer := infra.NewChromedpRenderer(cfg.Export.ChromePath, cfg.Export.RenderTimeout)
	pdfExporter := export.NewPDFExporter(renderer)

	app := fiber.New()
	httpadapter.NewHandler(logg, docStore, storage, registry, selector, pdfExporter).Register(app)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logg.Info("resume builder listening", "addr", addr)
	if err := app.Listen(addr); err != nil {
		logg.Fatal("server failed", "error", err)
	}
}
