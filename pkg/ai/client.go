// pkg/ai/client.go

package ai

import (
	"context"

	"farmai/entities"
)

// Client produces a diagnosis for one plot photo.
type Client interface {
	Diagnose(ctx context.Context, plotID, imageURI string) (*entities.Diagnosis, error)
}
