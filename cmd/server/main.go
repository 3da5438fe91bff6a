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
	"go.uber.org/zap"

	"farmai/config"
	"farmai/database"
	"farmai/pkg/ai"
	"farmai/pkg/farm"
	farmRepo "farmai/pkg/farm/repository"
	farmRepoImp "farmai/pkg/farm/repositoryImp"
	"farmai/router"

	// Plot
	plotCtrlImp "farmai/pkg/plot/controllerImp"
	plotSvcImp "farmai/pkg/plot/serviceImp"

	// Diagnose
	diagCtrlImp "farmai/pkg/diagnose/controllerImp"
	diagSvcImp "farmai/pkg/diagnose/serviceImp"

	// Image
	imageCtrlImp "farmai/pkg/image/controllerImp"
	imageSvcImp "farmai/pkg/image/serviceImp"

	// Screens
	healthCtrlImp "farmai/pkg/health/controllerImp"
	homeCtrlImp "farmai/pkg/home/controllerImp"
	profileCtrlImp "farmai/pkg/profile/controllerImp"
)

func main() {
	log := newLogger(os.Getenv("ENV"))
	defer log.Sync()

	// 1) Config
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	// 2) Farm store: the single owner of plots, diagnoses and the profile
	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("store", zap.Error(err))
	}

	// 3) Diagnosis generator
	llm := ai.NewMock(ai.WithDelay(cfg.DiagnosisDelay), ai.WithLogger(log.Named("ai")))

	// 4) Services + controllers
	plotSvc := plotSvcImp.NewPlotService(store, log.Named("plot"))
	diagSvc := diagSvcImp.New(store, llm, log.Named("diagnose"))
	imageSvc := imageSvcImp.New(cfg.CameraEnabled, log.Named("image"))

	ctl := router.Controllers{
		Plot:     plotCtrlImp.New(plotSvc, log.Named("plot")),
		Diagnose: diagCtrlImp.New(diagSvc, log.Named("diagnose")),
		Image:    imageCtrlImp.New(imageSvc, cfg.MaxImageBytes, log.Named("image")),
		Profile:  profileCtrlImp.New(store, log.Named("profile")),
		Home:     homeCtrlImp.New(store, log.Named("home")),
		Health:   healthCtrlImp.NewHealthCtrl(store, cfg.StoreBackend, log.Named("health")),
	}

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	router.New(e, ctl, log.Named("http"))

	// 6) Start
	go func() {
		log.Info("listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}

func newLogger(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if env == "" || env == "local" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}

func openStore(cfg config.AppConfig, log *zap.Logger) (farmRepo.FarmRepository, error) {
	seed := farm.Seed(time.Now())
	if cfg.StoreBackend != config.BackendSQLite {
		log.Info("store ready", zap.String("backend", config.BackendMemory))
		return farmRepoImp.NewMemory(seed), nil
	}
	db, err := database.OpenSQLite(database.MemoryDSN)
	if err != nil {
		return nil, err
	}
	store, err := farmRepoImp.NewSQLite(db, seed)
	if err != nil {
		return nil, err
	}
	log.Info("store ready", zap.String("backend", config.BackendSQLite))
	return store, nil
}
