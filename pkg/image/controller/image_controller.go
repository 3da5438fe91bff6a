package controller

import "github.com/labstack/echo/v4"

type ImageController interface {
	Upload(c echo.Context) error
	Get(c echo.Context) error
}
