package entities

import "time"

type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthHealthy, HealthWarning, HealthCritical:
		return true
	}
	return false
}

type RecommendationType string

const (
	RecFungicide  RecommendationType = "fungicide"
	RecPesticide  RecommendationType = "pesticide"
	RecFertilizer RecommendationType = "fertilizer"
	RecIrrigation RecommendationType = "irrigation"
	RecOther      RecommendationType = "other"
)

func (t RecommendationType) Valid() bool {
	switch t {
	case RecFungicide, RecPesticide, RecFertilizer, RecIrrigation, RecOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Diagnosis struct {
	ID              string           `json:"id"`
	PlotID          string           `json:"plot_id"` // not enforced to exist
	ImageURI        string           `json:"image_uri"`
	Disease         *string          `json:"disease,omitempty"`
	Pest            *string          `json:"pest,omitempty"`
	HealthStatus    HealthStatus     `json:"health_status"`
	Confidence      int              `json:"confidence"` // 0-100
	Symptoms        []string         `json:"symptoms"`
	CreatedAt       time.Time        `json:"created_at"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Valid reports whether confidence is within [0,100] and the health status is defined.
func (d Diagnosis) Valid() bool {
	return d.Confidence >= 0 && d.Confidence <= 100 && d.HealthStatus.Valid()
}

// Clone deep-copies the slices and optional fields so the copy shares nothing with d.
func (d Diagnosis) Clone() Diagnosis {
	out := d
	out.Disease = cloneStr(d.Disease)
	out.Pest = cloneStr(d.Pest)
	if d.Symptoms != nil {
		out.Symptoms = make([]string, len(d.Symptoms))
		copy(out.Symptoms, d.Symptoms)
	}
	if d.Recommendations != nil {
		out.Recommendations = make([]Recommendation, len(d.Recommendations))
		for i, r := range d.Recommendations {
			out.Recommendations[i] = r.Clone()
		}
	}
	return out
}

type Recommendation struct {
	ID          string             `json:"id"`
	DiagnosisID string             `json:"diagnosis_id"`
	Type        RecommendationType `json:"type"`
	Product     *string            `json:"product,omitempty"`
	Dosage      *string            `json:"dosage,omitempty"`
	Frequency   *string            `json:"frequency,omitempty"`
	Duration    *string            `json:"duration,omitempty"`
	Description string             `json:"description"`
	Cost        *float64           `json:"cost,omitempty"`
	Priority    Priority           `json:"priority"`
}

func (r Recommendation) Clone() Recommendation {
	out := r
	out.Product = cloneStr(r.Product)
	out.Dosage = cloneStr(r.Dosage)
	out.Frequency = cloneStr(r.Frequency)
	out.Duration = cloneStr(r.Duration)
	if r.Cost != nil {
		c := *r.Cost
		out.Cost = &c
	}
	return out
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
