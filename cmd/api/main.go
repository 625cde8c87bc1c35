package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loan-application-api/internal/adapter/http"
	mw "loan-application-api/internal/adapter/middleware"
	"loan-application-api/internal/adapter/repository/mysql"
	"loan-application-api/internal/config"
	"loan-application-api/internal/infrastructure/db"
	"loan-application-api/internal/infrastructure/logging"
	"loan-application-api/internal/infrastructure/metrics"
	"loan-application-api/internal/usecase/submission"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	pool := db.DefaultPool
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	gdb, err := db.OpenGorm(cfg.MySQLDSN(), pool, log)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()

	m := metrics.New()
	uc := submission.NewUsecase(mysql.NewGormUoW(gdb, log), log, m)
	h := httpadp.NewHandler(mysql.NewProbe(gdb), log, cfg.ExposeErrorDetails)
	sh := httpadp.NewSubmissionHandler(uc, cfg.ExposeErrorDetails)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.ErrorHandler(log)
	e.Server.ReadHeaderTimeout = 10 * time.Second
	e.Use(
		mw.RequestID(),
		mw.ContextLogger(log),
		mw.RequestLogger(log),
		mw.Metrics(m),
		middleware.Recover(),
		middleware.BodyLimit(cfg.BodyLimit),
		mw.CORS(cfg.CORSAllowedOrigin, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders),
	)

	// routes
	httpadp.Register(e, h, sh, m.Handler())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
}
