package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixfurn_backend/internal/catalog"
	catalogrepo "fixfurn_backend/internal/catalog/repository"
	"fixfurn_backend/internal/chat"
	"fixfurn_backend/internal/chat/agent"
	apphttp "fixfurn_backend/internal/http"
	"fixfurn_backend/internal/http/router"
	"fixfurn_backend/internal/interactions"
	interactionsrepo "fixfurn_backend/internal/interactions/repository"
	"fixfurn_backend/internal/repairs"
	repairsrepo "fixfurn_backend/internal/repairs/repository"
	"fixfurn_backend/platform/ai/gemini"
	"fixfurn_backend/platform/config"
	"fixfurn_backend/platform/logger"
	"fixfurn_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Data Layer
	// ========================================================================

	var (
		curated   []catalogrepo.CatalogItem
		reference []catalogrepo.ReferenceItem
		rules     repairsrepo.RuleTable
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		curated, err = catalogrepo.LoadCuratedCatalog(cfg.CatalogPath)
		return err
	})
	g.Go(func() error {
		var err error
		rules, err = repairsrepo.LoadRules(cfg.PriceRulesPath)
		return err
	})
	g.Go(func() error {
		items, err := catalogrepo.LoadReferenceItems(cfg.ReferenceCSVPath)
		if os.IsNotExist(err) {
			log.Warn("reference dataset not found; reference search disabled", "path", cfg.ReferenceCSVPath)
			return nil
		}
		if err != nil {
			return err
		}
		reference = items
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to load data files", "error", err)
		panic("failed to load data files: " + err.Error())
	}
	log.Info("data files loaded", "curatedItems", len(curated), "referenceItems", len(reference), "issues", len(rules))

	catalogRepo := catalogrepo.New(curated, reference)

	store, err := interactionsrepo.NewStore(cfg.LogsDir)
	if err != nil {
		log.Error("failed to initialize interaction store", "error", err)
		panic("failed to initialize interaction store: " + err.Error())
	}

	systemPrompt, err := agent.LoadSystemPrompt(cfg.PromptsDir)
	if err != nil {
		log.Error("failed to load system prompt", "error", err)
		panic("failed to load system prompt: " + err.Error())
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Model Client
	// ========================================================================

	model, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.GeminiTemperature,
	})
	if err != nil {
		log.Error("failed to initialize model client", "error", err)
		panic("failed to initialize model client: " + err.Error())
	}
	log.Info("model client initialized", "model", model.Name())

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	catalogModule := catalog.NewModule(catalogRepo, val, log)
	repairsModule := repairs.NewModule(rules, val, log)
	interactionsModule := interactions.NewModule(store, val, log)

	dispatcher := agent.NewDispatcher(
		catalogModule.Service(),
		repairsModule.Service(),
		interactionsModule.Service(),
		val,
	)
	orchestrator := agent.NewOrchestrator(model, dispatcher, systemPrompt, log, agent.Config{
		MaxToolCalls: cfg.ChatMaxToolCalls,
		CallTimeout:  cfg.ChatRequestTimeout,
	})
	chatModule := chat.NewModule(orchestrator, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			catalogModule,
			repairsModule,
			interactionsModule,
			chatModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
