// Command seed loads a catalog seed document into the database, either from
// a local file or from a MinIO bucket.
//
//	seed -file catalog.json
//	seed -bucket seeds -object catalog.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/swblog/starwars-api/internal/config"
	"github.com/swblog/starwars-api/internal/logging"
	"github.com/swblog/starwars-api/internal/repository/minio"
	"github.com/swblog/starwars-api/internal/repository/sqldb"
	"github.com/swblog/starwars-api/internal/service"
)

func main() {
	cfg := config.Load()

	file := flag.String("file", "", "path to a seed JSON document")
	bucket := flag.String("bucket", cfg.MinIOBucketSeed, "MinIO bucket holding the seed document")
	object := flag.String("object", "", "object name of the seed document")
	migrate := flag.Bool("migrate", cfg.AutoMigrate, "apply pending migrations first")
	flag.Parse()

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		logging.Fatal().Err(err).Msg("configure logging")
	}

	if (*file == "") == (*object == "") {
		fmt.Fprintln(os.Stderr, "usage: seed -file catalog.json | seed -bucket b -object o")
		os.Exit(2)
	}

	db, err := sqldb.New(cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		logging.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	ctx := context.Background()
	if *migrate {
		migrator, err := sqldb.NewMigrator(db)
		if err != nil {
			logging.Fatal().Err(err).Msg("load migrations")
		}
		if _, err := migrator.Up(ctx); err != nil {
			logging.Fatal().Err(err).Msg("apply migrations")
		}
	}

	seeder := service.NewSeedService(sqldb.NewStore(db))

	var result *service.SeedResult
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			logging.Fatal().Err(err).Msg("open seed file")
		}
		defer f.Close()
		result, err = seeder.Load(ctx, f)
		if err != nil {
			logging.Fatal().Err(err).Str("file", *file).Msg("seed failed")
		}
	} else {
		if !cfg.MinIOConfigured() {
			logging.Fatal().Msg("MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for -object")
		}
		client, err := minio.NewClient(minio.Options{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			UseSSL:    cfg.MinIOUseSSL,
		})
		if err != nil {
			logging.Fatal().Err(err).Msg("create minio client")
		}
		result, err = seeder.LoadObject(ctx, minio.NewStorage(client), *bucket, *object)
		if err != nil {
			logging.Fatal().Err(err).Str("bucket", *bucket).Str("object", *object).Msg("seed failed")
		}
	}

	logging.Info().
		Int("users", result.Users).
		Int("homeworlds", result.Homeworlds).
		Int("starships", result.Starships).
		Int("characters", result.Characters).
		Msg("catalog seeded")
}
