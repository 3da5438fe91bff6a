package controller

import "github.com/labstack/echo/v4"

type HomeController interface {
	Dashboard(c echo.Context) error
}
