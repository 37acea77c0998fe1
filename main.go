package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/paddock/config"
	"github.com/padraicbc/paddock/db"
	"github.com/padraicbc/paddock/handlers"
	applog "github.com/padraicbc/paddock/logger"
	"github.com/padraicbc/paddock/standings"
	"github.com/padraicbc/paddock/storage"
	"github.com/padraicbc/paddock/store"
	"github.com/padraicbc/paddock/validation"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb, err := db.Setup(ctx, cfg)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	defer bdb.Close()

	if err := db.CreateTables(ctx, bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	st := store.New(bdb)

	var uploader storage.Uploader
	if cfg.S3.Enabled() {
		s3u, err := storage.NewS3(ctx, cfg.S3)
		if err != nil {
			logger.Fatal("s3 setup failed", zap.Error(err))
		}
		uploader = s3u
		logger.Info("logo uploads enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	h := handlers.New(handlers.Deps{
		Repo:        st,
		Standings:   standings.New(st, logger),
		Uploader:    uploader,
		JWTKey:      cfg.JWTKey(),
		IsAdmin:     cfg.IsAdmin,
		DefaultSort: cfg.DefaultSort,
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*", "Authorization"},
	}))

	h.Register(e)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	logger.Info("starting server", zap.Strings("domains", cfg.TLSDomains))
	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
