package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily-trivia-service/internal/app"
	"daily-trivia-service/internal/config"
	"daily-trivia-service/internal/domain"
	filestore "daily-trivia-service/internal/infra/file"
	"daily-trivia-service/internal/infra/memory"
	pgcatalog "daily-trivia-service/internal/infra/postgres"
	redisinfra "daily-trivia-service/internal/infra/redis"
	transport "daily-trivia-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the daily trivia server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(seedCatalog())
	switch {
	case pool != nil:
		loader = pgcatalog.NewCatalogLoader(pool)
	case cfg.Catalog.Path != "":
		loader = filestore.NewCatalogLoader(cfg.Catalog.Path)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogRepo app.CatalogRepository
	if redisClient != nil {
		catalogRepo = redisinfra.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogRepo = memory.NewCatalogRepository(loader, catalogTTL)
	}

	// A service that cannot pick a daily question must not serve traffic.
	catalog, err := catalogRepo.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("load question catalog: %w", err)
	}
	if len(catalog) == 0 {
		return domain.ErrEmptyCatalog
	}

	var users app.UserStore
	switch {
	case redisClient != nil:
		users = redisinfra.NewUserStore(redisClient)
	case cfg.Users.Path != "":
		users, err = filestore.NewUserStore(cfg.Users.Path)
		if err != nil {
			return err
		}
	default:
		users = memory.NewUserStore()
	}

	numbering := app.DefaultNumbering()
	if cfg.QuestionNumber.Policy == string(app.NumberPolicyYearly) {
		numbering.Policy = app.NumberPolicyYearly
	}
	if cfg.QuestionNumber.Epoch != "" {
		epoch, err := domain.ParseDayKey(cfg.QuestionNumber.Epoch)
		if err != nil {
			return err
		}
		numbering.Epoch = epoch
	}

	service := app.NewTriviaService(users, catalogRepo, app.NewDayClock(), numbering)
	handler := transport.NewHandler(service)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	handler.Register(mux)
	mux.HandleFunc("/ws/leaderboard", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting daily trivia service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
