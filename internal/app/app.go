package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/graphask-backend/internal/graph"
	"github.com/yungbote/graphask-backend/internal/http/handlers"
	"github.com/yungbote/graphask-backend/internal/observability"
	"github.com/yungbote/graphask-backend/internal/platform/logger"
	"github.com/yungbote/graphask-backend/internal/platform/neo4jdb"
	"github.com/yungbote/graphask-backend/internal/platform/openai"
	"github.com/yungbote/graphask-backend/internal/qa"
	"github.com/yungbote/graphask-backend/internal/server"
)

type App struct {
	Log    *logger.Logger
	Router *gin.Engine
	Cfg    Config
	Neo4j  *neo4jdb.Client
	QA     *qa.Service

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig()

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "graphask",
		Environment: cfg.Environment,
	})

	log.Info("Connecting to Neo4j...")
	neo4jClient, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init neo4j: %w", err)
	}

	log.Info("Setting up OpenAI client...")
	llm, err := openai.NewClient(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init openai: %w", err)
	}

	store := graph.NewStore(neo4jClient, log)
	schemaProvider := graph.NewSchemaProvider(neo4jClient, log, cfg.SchemaCacheTTL)

	log.Info("Setting up QA pipeline...")
	gate := qa.NewKeywordGate(nil, cfg.GateThreshold)
	generator := qa.NewCypherGenerator(llm, schemaProvider, log)
	executor := qa.NewExecutor(store, log, cfg.AllowWrites)
	direct := qa.NewDirectAnswerer(llm, log)
	synthesizer := qa.NewSynthesizer(llm, log)
	memory := qa.NewConversationMemory(cfg.MemoryMaxEntries)
	qaService := qa.NewService(log, gate, generator, executor, direct, synthesizer, memory)

	log.Info("Setting up router...")
	askHandler := handlers.NewAskHandler(log, qaService)
	router := server.NewRouter(server.RouterConfig{
		Log:        log,
		AskHandler: askHandler,
	})

	return &App{
		Log:          log,
		Router:       router,
		Cfg:          cfg,
		Neo4j:        neo4jClient,
		QA:           qaService,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx := context.Background()
	if a.otelShutdown != nil {
		_ = a.otelShutdown(ctx)
	}
	if a.Neo4j != nil {
		_ = a.Neo4j.Close(ctx)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
