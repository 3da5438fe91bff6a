package repositoryImp

import (
	"context"
	"sync"

	"farmai/entities"
	"farmai/pkg/farm"
	"farmai/pkg/farm/repository"
)

type memoryRepo struct {
	mu        sync.RWMutex
	plots     []entities.Plot
	diagnoses []entities.Diagnosis
	user      entities.User
}

func NewMemory(seed farm.SeedData) repository.FarmRepository {
	return &memoryRepo{
		plots:     append([]entities.Plot(nil), seed.Plots...),
		diagnoses: []entities.Diagnosis{},
		user:      seed.User,
	}
}

func (r *memoryRepo) AddPlot(p entities.Plot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plots = append(r.plots, p)
	return nil
}

func (r *memoryRepo) UpdatePlot(id string, patch entities.PlotPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plots {
		if r.plots[i].ID == id {
			r.plots[i] = patch.Apply(r.plots[i])
		}
	}
	return nil
}

func (r *memoryRepo) DeletePlot(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.plots[:0:0]
	for _, p := range r.plots {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.plots = kept
	return nil
}

func (r *memoryRepo) Plots() ([]entities.Plot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Plot, len(r.plots))
	copy(out, r.plots)
	return out, nil
}

func (r *memoryRepo) AddDiagnosis(d entities.Diagnosis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnoses = append(r.diagnoses, d.Clone())
	return nil
}

func (r *memoryRepo) Diagnoses() ([]entities.Diagnosis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Diagnosis, len(r.diagnoses))
	for i, d := range r.diagnoses {
		out[i] = d.Clone()
	}
	return out, nil
}

func (r *memoryRepo) DiagnosesByPlot(plotID string) ([]entities.Diagnosis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Diagnosis{}
	for _, d := range r.diagnoses {
		if d.PlotID == plotID {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func (r *memoryRepo) User() (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.user, nil
}

func (r *memoryRepo) SetUser(u entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = u
	return nil
}

func (r *memoryRepo) Ping(ctx context.Context) error { return ctx.Err() }
