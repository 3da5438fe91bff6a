// pkg/ai/mock_client.go

package ai

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"farmai/entities"
	"farmai/pkg/idgen"
)

// DefaultDelay simulates the round trip of a real inference call.
const DefaultDelay = 2 * time.Second

// mockClient ignores the image content: identical photos can get different outcomes.
type mockClient struct {
	mu        sync.Mutex // guards rng
	rng       *rand.Rand
	delay     time.Duration
	now       func() time.Time
	newID     func() string
	templates []Template
	log       *zap.Logger
}

type Option func(*mockClient)

// WithRand injects the source used to pick an outcome; fix the seed for deterministic picks.
func WithRand(r *rand.Rand) Option { return func(m *mockClient) { m.rng = r } }

func WithDelay(d time.Duration) Option { return func(m *mockClient) { m.delay = d } }

func WithClock(now func() time.Time) Option { return func(m *mockClient) { m.now = now } }

func WithIDs(newID func() string) Option { return func(m *mockClient) { m.newID = newID } }

func WithLogger(l *zap.Logger) Option { return func(m *mockClient) { m.log = l } }

func NewMock(opts ...Option) Client {
	m := &mockClient{
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		delay:     DefaultDelay,
		now:       time.Now,
		newID:     idgen.Func(idgen.DiagnosisPrefix),
		templates: Catalog(),
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *mockClient) Diagnose(ctx context.Context, plotID, imageURI string) (*entities.Diagnosis, error) {
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	m.mu.Lock()
	idx := m.rng.IntN(len(m.templates))
	m.mu.Unlock()

	d := m.templates[idx].Stamp(m.newID(), plotID, imageURI, m.now())
	m.log.Debug("mock diagnosis",
		zap.String("diagnosis_id", d.ID),
		zap.String("plot_id", plotID),
		zap.Int("template", idx),
		zap.String("health_status", string(d.HealthStatus)),
	)
	return &d, nil
}
