package entities

import "time"

type Plot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CropType  string    `json:"crop_type"` // Maíz|Soja|Trigo|...
	Area      float64   `json:"area"`      // hectares
	ImageURI  string    `json:"image_uri,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlotPatch is a sparse update: only non-nil fields are written.
type PlotPatch struct {
	Name      *string    `json:"name"`
	CropType  *string    `json:"crop_type"`
	Area      *float64   `json:"area"`
	ImageURI  *string    `json:"image_uri"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Apply returns p with the patch fields written over it.
func (pt PlotPatch) Apply(p Plot) Plot {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.CropType != nil {
		p.CropType = *pt.CropType
	}
	if pt.Area != nil {
		p.Area = *pt.Area
	}
	if pt.ImageURI != nil {
		p.ImageURI = *pt.ImageURI
	}
	if pt.CreatedAt != nil {
		p.CreatedAt = *pt.CreatedAt
	}
	if pt.UpdatedAt != nil {
		p.UpdatedAt = *pt.UpdatedAt
	}
	return p
}

func (pt PlotPatch) Empty() bool {
	return pt.Name == nil && pt.CropType == nil && pt.Area == nil &&
		pt.ImageURI == nil && pt.CreatedAt == nil && pt.UpdatedAt == nil
}
