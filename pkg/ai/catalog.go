package ai

import (
	"fmt"
	"time"

	"farmai/entities"
)

// Template is one canned outcome. Recommendation ids and diagnosis ids are
// filled in when the template is stamped.
type Template struct {
	Disease         *string
	Pest            *string
	HealthStatus    entities.HealthStatus
	Confidence      int
	Symptoms        []string
	Recommendations []entities.Recommendation
}

func str(s string) *string { return &s }

var catalog = []Template{
	{
		Disease:      str("Roya Común"),
		HealthStatus: entities.HealthCritical,
		Confidence:   87,
		Symptoms:     []string{"Manchas anaranjadas en hojas", "Lesiones pustulosas", "Defoliación progresiva"},
		Recommendations: []entities.Recommendation{
			{
				Type:        entities.RecFungicide,
				Product:     str("Azoxistrobina 50%"),
				Dosage:      str("750 ml/ha"),
				Frequency:   str("Cada 14 días"),
				Description: "Fungicida sistémico de amplio espectro",
				Priority:    entities.PriorityHigh,
			},
			{
				Type:        entities.RecOther,
				Description: "Remover hojas infectadas para mejorar circulación de aire",
				Priority:    entities.PriorityMedium,
			},
		},
	},
	{
		Disease:      str("Mildiu Velloso"),
		HealthStatus: entities.HealthWarning,
		Confidence:   72,
		Symptoms:     []string{"Mancha angular en hojas", "Eflorescencia blanca en envés", "Enrollamiento de hojas"},
		Recommendations: []entities.Recommendation{
			{
				Type:        entities.RecFungicide,
				Product:     str("Oxicloruro de Cobre"),
				Dosage:      str("3 kg/ha"),
				Frequency:   str("Cada 10-14 días"),
				Description: "Fungicida preventivo",
				Priority:    entities.PriorityHigh,
			},
		},
	},
	{
		Pest:         str("Gusano Cogollero"),
		HealthStatus: entities.HealthCritical,
		Confidence:   94,
		Symptoms:     []string{"Agujeros en hojas", "Galerías en cogollo", "Presencia de larvas verdes"},
		Recommendations: []entities.Recommendation{
			{
				Type:        entities.RecPesticide,
				Product:     str("Clorpirifós 48% EC"),
				Dosage:      str("1.5 L/ha"),
				Frequency:   str("Una aplicación"),
				Description: "Insecticida de contacto e ingestión",
				Priority:    entities.PriorityHigh,
			},
			{
				Type:        entities.RecPesticide,
				Product:     str("Bacillus thuringiensis"),
				Dosage:      str("500 ml/ha"),
				Frequency:   str("Cada 7-10 días"),
				Description: "Insecticida biológico selectivo",
				Priority:    entities.PriorityMedium,
			},
		},
	},
	{
		HealthStatus: entities.HealthHealthy,
		Confidence:   96,
		Symptoms:     []string{},
		Recommendations: []entities.Recommendation{
			{
				Type:        entities.RecFertilizer,
				Description: "Mantener fertilización regular (NPK 10-10-10)",
				Priority:    entities.PriorityLow,
			},
			{
				Type:        entities.RecIrrigation,
				Description: "Riego cada 3-4 días según condiciones de lluvia",
				Priority:    entities.PriorityLow,
			},
		},
	},
}

// Catalog returns a deep copy of the canned outcomes in their fixed order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	for i, t := range catalog {
		out[i] = t.clone()
	}
	return out
}

func (t Template) clone() Template {
	d := entities.Diagnosis{
		Disease: t.Disease, Pest: t.Pest, Symptoms: t.Symptoms, Recommendations: t.Recommendations,
	}.Clone()
	t.Disease, t.Pest, t.Symptoms, t.Recommendations = d.Disease, d.Pest, d.Symptoms, d.Recommendations
	return t
}

// Stamp turns the template into a diagnosis for plotID and imageURI.
// Recommendation ids are positional (rec_0, rec_1, ...), not globally unique.
func (t Template) Stamp(id, plotID, imageURI string, at time.Time) entities.Diagnosis {
	c := t.clone()
	d := entities.Diagnosis{
		ID:              id,
		PlotID:          plotID,
		ImageURI:        imageURI,
		Disease:         c.Disease,
		Pest:            c.Pest,
		HealthStatus:    c.HealthStatus,
		Confidence:      c.Confidence,
		Symptoms:        c.Symptoms,
		CreatedAt:       at,
		Recommendations: c.Recommendations,
	}
	for i := range d.Recommendations {
		d.Recommendations[i].ID = fmt.Sprintf("rec_%d", i)
		d.Recommendations[i].DiagnosisID = id
	}
	return d
}
