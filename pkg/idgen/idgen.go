// Package idgen issues collision-free identifiers for plots, diagnoses and images.
package idgen

import "github.com/google/uuid"

const (
	PlotPrefix      = "plot"
	DiagnosisPrefix = "diag"
	ImagePrefix     = "img"
)

// New returns prefix_<uuid v4>, or a bare uuid when prefix is empty.
func New(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// Func adapts New to the func() string shape services accept.
func Func(prefix string) func() string {
	return func() string { return New(prefix) }
}
