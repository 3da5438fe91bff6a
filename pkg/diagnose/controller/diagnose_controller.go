package controller

import "github.com/labstack/echo/v4"

type DiagnoseController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Export(c echo.Context) error
}
