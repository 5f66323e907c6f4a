package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/technotes/backend/internal/common/config"
	"github.com/technotes/backend/internal/common/constants"
	commoncrypto "github.com/technotes/backend/internal/common/crypto"
	"github.com/technotes/backend/internal/common/db"
	commonhttp "github.com/technotes/backend/internal/common/http"
	"github.com/technotes/backend/internal/common/logger"
	srv "github.com/technotes/backend/internal/common/server"
	noterepo "github.com/technotes/backend/internal/note/repository"
	userhttp "github.com/technotes/backend/internal/user/http"
	userrepo "github.com/technotes/backend/internal/user/repository"
	userservice "github.com/technotes/backend/internal/user/service"
	"github.com/technotes/backend/web"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "technotes", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	requestLog, err := logger.NewSink(cfg.LogDir, constants.RequestLogFile, "technotes", cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize request log: %v", err)
	}

	errorLog, err := logger.NewSink(cfg.LogDir, constants.ErrorLogFile, "technotes", cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize error log: %v", err)
	}

	database := db.Connect(log, cfg.DatabaseURI, cfg.DatabaseName)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), constants.MongoConnectTimeout)
	if err := db.EnsureIndexes(indexCtx, log, database); err != nil {
		indexCancel()
		log.Fatalf("failed to ensure indexes: %v", err)
	}
	indexCancel()

	usersRepo := userrepo.NewMongoRepository(database)
	notesRepo := noterepo.NewMongoRepository(database)
	hasher := &commoncrypto.BcryptHasher{}
	usersService := userservice.NewUsersService(usersRepo, notesRepo, hasher, log)

	errorHandler := commonhttp.NewErrorHandler(errorLog)
	usersHandler := userhttp.NewHandler(usersService, errorHandler, cfg.RequestTimeout, log)
	notFound := commonhttp.NotFoundHandler(web.NotFoundPage)

	mux := http.NewServeMux()
	mux.Handle("/users", usersHandler)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	// The root pattern doubles as the fallback for every unmatched route.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(web.IndexPage)
			return
		}
		notFound.ServeHTTP(w, r)
	})

	pipeline := commonhttp.BuildPipeline(requestLog, errorHandler, cfg.AllowedOrigins, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, pipeline)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			log.Infof("disconnecting from mongodb")
			return database.Client().Disconnect(ctx)
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, "technotes", shutdownHooks)
}
