package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hkawano/stagedive/pkg/catalog"
	"github.com/hkawano/stagedive/pkg/collectors"
	"github.com/hkawano/stagedive/pkg/config"
	"github.com/hkawano/stagedive/pkg/integrations"
	"github.com/hkawano/stagedive/pkg/interfaces"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg.Logging)
	log.Info().Msg("starting stagedive")

	// Favorites persistence is optional; without a database path every
	// favorites operation degrades to a safe no-op.
	var db *sql.DB
	if cfg.Database.Path != "" {
		db, err = collectors.NewSQLiteDB(cfg.Database.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("failed to open favorites database")
		}
		defer db.Close()
	} else {
		log.Warn().Msg("no database path configured, favorites will not persist")
	}

	favoriteRepo, err := collectors.NewFavoriteRepository(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create favorite repository")
	}

	// Spotify is optional by design: missing credentials switch artist
	// search to generated placeholder data.
	var artistSearcher interfaces.ArtistSearcher
	if cfg.APIs.Spotify.Configured() {
		spotifyClient, err := integrations.NewSpotifyClient(integrations.SpotifyConfig{
			ClientID:     cfg.APIs.Spotify.ClientID,
			ClientSecret: cfg.APIs.Spotify.ClientSecret,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create spotify client")
		}
		artistSearcher = spotifyClient
	} else {
		log.Info().Msg("spotify credentials not configured, using placeholder artists")
	}

	bandsintownClient, err := integrations.NewBandsintownClient(integrations.BandsintownConfig{
		AppID: cfg.APIs.Bandsintown.AppID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bandsintown client")
	}

	eventCatalog := catalog.New()
	aggregator := interfaces.NewEventAggregator(bandsintownClient, eventCatalog)

	searchService := interfaces.NewSearchService(artistSearcher, aggregator)
	favoritesService := interfaces.NewFavoritesManager(favoriteRepo)

	router := mux.NewRouter()
	router.Use(interfaces.RequestLogging())
	router.Use(interfaces.Recovery())

	interfaces.NewSearchHandler(searchService).RegisterRoutes(router)
	interfaces.NewEventHandler(eventCatalog).RegisterRoutes(router)
	interfaces.NewFavoritesHandler(favoritesService).RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
