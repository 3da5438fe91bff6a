package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	diagCtrl "farmai/pkg/diagnose/controller"
	healthCtrl "farmai/pkg/health/controller"
	homeCtrl "farmai/pkg/home/controller"
	imageCtrl "farmai/pkg/image/controller"
	"farmai/pkg/middleware"
	plotCtrl "farmai/pkg/plot/controller"
	profileCtrl "farmai/pkg/profile/controller"
)

type Controllers struct {
	Plot     plotCtrl.PlotController
	Diagnose diagCtrl.DiagnoseController
	Image    imageCtrl.ImageController
	Profile  profileCtrl.ProfileController
	Home     homeCtrl.HomeController
	Health   healthCtrl.HealthController
}

func New(e *echo.Echo, ctl Controllers, log *zap.Logger) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger(log))

	e.GET("/health", ctl.Health.Health)

	api := e.Group("/api/v1")

	api.GET("/home", ctl.Home.Dashboard)

	api.GET("/plots", ctl.Plot.List)
	api.POST("/plots", ctl.Plot.Create)
	api.PATCH("/plots/:id", ctl.Plot.Patch)
	api.DELETE("/plots/:id", ctl.Plot.Delete)
	api.GET("/plots/:id/diagnoses", ctl.Plot.Diagnoses)

	api.POST("/images", ctl.Image.Upload)
	api.GET("/images/:id", ctl.Image.Get)

	api.POST("/diagnoses", ctl.Diagnose.Create)
	api.GET("/diagnoses", ctl.Diagnose.List)
	api.GET("/diagnoses/export.xlsx", ctl.Diagnose.Export)

	api.GET("/profile", ctl.Profile.Get)
	api.PUT("/profile", ctl.Profile.Put)
	return e
}
