package service

import (
	"context"
	"errors"
)

var (
	// ErrCanceled means the user closed the picker without choosing a photo.
	ErrCanceled = errors.New("image selection canceled")
	// ErrPermissionDenied means camera access was refused.
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrUnsupportedType  = errors.New("unsupported image type")
	ErrNotFound         = errors.New("image not found")
)

type Source string

const (
	SourceCamera  Source = "camera"
	SourceGallery Source = "gallery"
)

type Image struct {
	ID          string
	URI         string
	Source      Source
	ContentType string
	Data        []byte
}

type ImageService interface {
	// Acquire stores one photo and returns its opaque reference.
	Acquire(ctx context.Context, src Source, data []byte) (*Image, error)
	Get(id string) (*Image, error)
}
