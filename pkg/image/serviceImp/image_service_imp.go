package serviceImp

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"farmai/pkg/idgen"
	"farmai/pkg/image/service"
)

// URIPrefix marks references that resolve through this process's image store.
const URIPrefix = "mem://images/"

type imageSvc struct {
	mu            sync.RWMutex
	images        map[string]service.Image
	cameraEnabled bool
	newID         func() string
	log           *zap.Logger
}

func New(cameraEnabled bool, log *zap.Logger) service.ImageService {
	return &imageSvc{
		images:        map[string]service.Image{},
		cameraEnabled: cameraEnabled,
		newID:         idgen.Func(idgen.ImagePrefix),
		log:           log,
	}
}

func (s *imageSvc) Acquire(ctx context.Context, src service.Source, data []byte) (*service.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == service.SourceCamera && !s.cameraEnabled {
		s.log.Warn("camera access refused")
		return nil, service.ErrPermissionDenied
	}
	if len(data) == 0 {
		return nil, service.ErrCanceled
	}
	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, service.ErrUnsupportedType
	}
	if src == "" {
		src = service.SourceGallery
	}

	id := s.newID()
	img := service.Image{
		ID:          id,
		URI:         URIPrefix + id,
		Source:      src,
		ContentType: ct,
		Data:        append([]byte(nil), data...),
	}
	s.mu.Lock()
	s.images[id] = img
	s.mu.Unlock()

	s.log.Info("image acquired", zap.String("image_id", id), zap.String("source", string(src)), zap.Int("bytes", len(data)))
	return &img, nil
}

func (s *imageSvc) Get(id string) (*service.Image, error) {
	s.mu.RLock()
	img, ok := s.images[strings.TrimPrefix(id, URIPrefix)]
	s.mu.RUnlock()
	if !ok {
		return nil, service.ErrNotFound
	}
	return &img, nil
}
