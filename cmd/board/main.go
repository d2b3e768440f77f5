package main

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/personality-board/internal/comments"
	"github.com/example/personality-board/internal/events"
	"github.com/example/personality-board/internal/handlers"
	"github.com/example/personality-board/internal/platform/config"
	"github.com/example/personality-board/internal/platform/db"
	"github.com/example/personality-board/internal/platform/httpserver"
	"github.com/example/personality-board/internal/platform/logging"
	"github.com/example/personality-board/internal/platform/run"
	"github.com/example/personality-board/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	stores := initStores(cfg, log)
	if stores.close != nil {
		defer stores.close()
	}

	pub := initEvents(cfg, log)

	svc := comments.New(stores.comments, stores.users, stores.profiles, pub, log)

	r := chi.NewRouter()
	httpserver.SetupRouter(r, httpserver.RouterConfig{ReadyFunc: stores.ready})
	r.Post("/v1/users", handlers.CreateUser(stores.users))
	r.Get("/v1/users", handlers.ListUsers(stores.users))
	r.Get("/v1/users/{user_id}", handlers.GetUser(stores.users))
	r.Post("/v1/profiles", handlers.CreateProfile(stores.profiles))
	r.Get("/v1/profiles", handlers.ListProfiles(stores.profiles))
	r.Get("/v1/profiles/{profile_id}", handlers.GetProfile(stores.profiles))
	r.Get("/v1/profiles/{profile_id}/comments", handlers.ListProfileComments(svc))
	r.Post("/v1/comments", handlers.CreateComment(svc))
	r.Get("/v1/comments", handlers.ListComments(svc))
	r.Post("/v1/comments/{comment_id}/like", handlers.VoteComment(svc))

	srv := httpserver.New(httpserver.Options{
		Addr:        cfg.HTTP.Addr,
		ServiceName: cfg.ServiceName,
		Logger:      log,
		Router:      r,
	})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}

type backends struct {
	comments store.CommentStore
	users    store.UserStore
	profiles store.ProfileStore
	ready    func() error
	close    func()
}

// initStores selects the storage backend. In production (APP_ENV=production)
// it requires a working Postgres connection and terminates the process
// otherwise; in development it falls back to in-memory stores.
func initStores(cfg config.AppConfig, log *zap.Logger) backends {
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction() {
			log.Error("DATABASE_URL is required in production")
			_ = log.Sync()
			run.Exit(1)
		}
		log.Warn("DATABASE_URL not set, using in-memory stores (development only)")
		return memoryBackends()
	}

	pool, err := db.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		if cfg.IsProduction() {
			log.Error("postgres is required in production but unavailable", zap.Error(err))
			_ = log.Sync()
			run.Exit(1)
		}
		log.Warn("postgres unavailable, falling back to in-memory stores", zap.Error(err))
		return memoryBackends()
	}

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		pool.Close()
		if cfg.IsProduction() {
			log.Error("schema migration failed", zap.Error(err))
			_ = log.Sync()
			run.Exit(1)
		}
		log.Warn("schema migration failed, falling back to in-memory stores", zap.Error(err))
		return memoryBackends()
	}

	log.Info("stores: postgres")
	return backends{
		comments: store.NewPostgresCommentStore(pool),
		users:    store.NewPostgresUserStore(pool),
		profiles: store.NewPostgresProfileStore(pool),
		ready:    func() error { return pingPool(pool) },
		close:    pool.Close,
	}
}

func memoryBackends() backends {
	return backends{
		comments: store.NewInMemoryCommentStore(),
		users:    store.NewInMemoryUserStore(),
		profiles: store.NewInMemoryProfileStore(),
	}
}

func pingPool(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return pool.Ping(ctx)
}

// initEvents builds the NATS publisher; the service runs without a broker.
func initEvents(cfg config.AppConfig, log *zap.Logger) comments.EventPublisher {
	pub, err := events.New(cfg.NATSURL, log)
	if err != nil {
		log.Warn("NATS unavailable, board events will not be published", zap.Error(err))
		return nil
	}
	return pub
}
