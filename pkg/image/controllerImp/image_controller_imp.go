package controllerImp

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmai/pkg/image/controller"
	"farmai/pkg/image/service"
)

type ImageCtrl struct {
	s        service.ImageService
	maxBytes int64
	log      *zap.Logger
}

func New(s service.ImageService, maxBytes int64, log *zap.Logger) controller.ImageController {
	return &ImageCtrl{s: s, maxBytes: maxBytes, log: log}
}

// Upload takes multipart field "file" and form value "source" (camera|gallery).
// A request without a file counts as a canceled picker.
func (h *ImageCtrl) Upload(c echo.Context) error {
	src := service.Source(c.FormValue("source"))
	if src != "" && src != service.SourceCamera && src != service.SourceGallery {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "source must be camera or gallery"})
	}

	var data []byte
	if fh, err := c.FormFile("file"); err == nil {
		if fh.Size > h.maxBytes {
			return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "image too large"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
		}
		defer f.Close()
		if data, err = io.ReadAll(io.LimitReader(f, h.maxBytes)); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
		}
	}

	img, err := h.s.Acquire(c.Request().Context(), src, data)
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Permiso requerido", "detail": "Se necesita acceso a la cámara"})
	case errors.Is(err, service.ErrCanceled):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no image selected"})
	case errors.Is(err, service.ErrUnsupportedType):
		return c.JSON(http.StatusUnsupportedMediaType, echo.Map{"error": err.Error()})
	case err != nil:
		h.log.Error("image upload failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":           img.ID,
		"image_uri":    img.URI,
		"source":       img.Source,
		"content_type": img.ContentType,
	})
}

func (h *ImageCtrl) Get(c echo.Context) error {
	img, err := h.s.Get(c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, img.ContentType, img.Data)
}
