package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/swblog/starwars-api/internal/config"
	"github.com/swblog/starwars-api/internal/logging"
	"github.com/swblog/starwars-api/internal/repository/sqldb"
	"github.com/swblog/starwars-api/internal/service"
	transport "github.com/swblog/starwars-api/internal/transport/http"
)

func main() {
	cfg := config.Load()
	if err := logging.Init(logging.Config{
		Level:        cfg.LogLevel,
		Format:       cfg.LogFormat,
		LogstashAddr: cfg.LogstashTCPAddr,
	}); err != nil {
		logging.Fatal().Err(err).Msg("configure logging")
	}
	defer logging.Close()

	db, err := sqldb.New(cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		logging.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	logging.Info().Str("driver", db.DriverName()).Msg("database connected")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		migrator, err := sqldb.NewMigrator(db)
		if err != nil {
			logging.Fatal().Err(err).Msg("load migrations")
		}
		applied, err := migrator.Up(ctx)
		if err != nil {
			logging.Fatal().Err(err).Msg("apply migrations")
		}
		for _, m := range applied {
			logging.Info().Int("version", m.Version).Str("name", m.Name).Msg("migration applied")
		}
	}

	store := sqldb.NewStore(db)
	catalog := service.NewCatalogService(store)
	favorites := service.NewFavoriteService(store)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterCatalog(e, catalog)
	transport.RegisterFavorites(e, favorites)
	if cfg.EnableAdmin {
		transport.RegisterAdmin(e, service.NewAdminService(store), catalog, favorites)
	}
	if cfg.EnableSwagger {
		transport.RegisterSwagger(e)
	}
	transport.RegisterSitemap(e)

	go func() {
		logging.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
