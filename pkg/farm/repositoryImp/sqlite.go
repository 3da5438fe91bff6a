package repositoryImp

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"farmai/entities"
	"farmai/pkg/farm"
	"farmai/pkg/farm/repository"
)

// Rows carry an auto-increment Seq so reads come back in insertion order.
// Caller ids are plain indexed columns: the store does not check uniqueness.

type plotRow struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	PlotID    string `gorm:"index"`
	Name      string
	CropType  string
	Area      float64
	ImageURI  string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (plotRow) TableName() string { return "plots" }

type diagnosisRow struct {
	Seq             uint   `gorm:"primaryKey;autoIncrement"`
	DiagnosisID     string `gorm:"index"`
	PlotID          string `gorm:"index"`
	ImageURI        string
	Disease         *string
	Pest            *string
	HealthStatus    string
	Confidence      int
	Symptoms        []string                  `gorm:"serializer:json"`
	Recommendations []entities.Recommendation `gorm:"serializer:json"`
	CreatedAt       time.Time                 `gorm:"autoCreateTime:false"`
}

func (diagnosisRow) TableName() string { return "diagnoses" }

type userRow struct {
	Seq       uint `gorm:"primaryKey"`
	UserID    string
	Name      string
	Email     string
	Farm      string
	Location  string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (userRow) TableName() string { return "users" }

const profileSeq = 1

type sqliteRepo struct{ db *gorm.DB }

// NewSQLite migrates the farm tables on db and loads the seed state.
func NewSQLite(db *gorm.DB, seed farm.SeedData) (repository.FarmRepository, error) {
	if err := db.AutoMigrate(&plotRow{}, &diagnosisRow{}, &userRow{}); err != nil {
		return nil, fmt.Errorf("automigrate farm: %w", err)
	}
	r := &sqliteRepo{db: db}
	for _, p := range seed.Plots {
		if err := r.AddPlot(p); err != nil {
			return nil, fmt.Errorf("seed plot %s: %w", p.ID, err)
		}
	}
	if err := r.SetUser(seed.User); err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return r, nil
}

func (r *sqliteRepo) AddPlot(p entities.Plot) error {
	row := plotRow{
		PlotID: p.ID, Name: p.Name, CropType: p.CropType, Area: p.Area,
		ImageURI: p.ImageURI, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
	return r.db.Create(&row).Error
}

func (r *sqliteRepo) UpdatePlot(id string, patch entities.PlotPatch) error {
	upd := map[string]any{}
	if patch.Name != nil {
		upd["name"] = *patch.Name
	}
	if patch.CropType != nil {
		upd["crop_type"] = *patch.CropType
	}
	if patch.Area != nil {
		upd["area"] = *patch.Area
	}
	if patch.ImageURI != nil {
		upd["image_uri"] = *patch.ImageURI
	}
	if patch.CreatedAt != nil {
		upd["created_at"] = *patch.CreatedAt
	}
	if patch.UpdatedAt != nil {
		upd["updated_at"] = *patch.UpdatedAt
	}
	if len(upd) == 0 {
		return nil
	}
	return r.db.Model(&plotRow{}).Where("plot_id = ?", id).Updates(upd).Error
}

func (r *sqliteRepo) DeletePlot(id string) error {
	return r.db.Where("plot_id = ?", id).Delete(&plotRow{}).Error
}

func (r *sqliteRepo) Plots() ([]entities.Plot, error) {
	var rows []plotRow
	if err := r.db.Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Plot, len(rows))
	for i, row := range rows {
		out[i] = entities.Plot{
			ID: row.PlotID, Name: row.Name, CropType: row.CropType, Area: row.Area,
			ImageURI: row.ImageURI, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
		}
	}
	return out, nil
}

func (r *sqliteRepo) AddDiagnosis(d entities.Diagnosis) error {
	row := diagnosisRow{
		DiagnosisID:     d.ID,
		PlotID:          d.PlotID,
		ImageURI:        d.ImageURI,
		Disease:         d.Disease,
		Pest:            d.Pest,
		HealthStatus:    string(d.HealthStatus),
		Confidence:      d.Confidence,
		Symptoms:        d.Symptoms,
		Recommendations: d.Recommendations,
		CreatedAt:       d.CreatedAt,
	}
	return r.db.Create(&row).Error
}

func (r *sqliteRepo) Diagnoses() ([]entities.Diagnosis, error) {
	return r.findDiagnoses(r.db)
}

func (r *sqliteRepo) DiagnosesByPlot(plotID string) ([]entities.Diagnosis, error) {
	return r.findDiagnoses(r.db.Where("plot_id = ?", plotID))
}

func (r *sqliteRepo) findDiagnoses(q *gorm.DB) ([]entities.Diagnosis, error) {
	var rows []diagnosisRow
	if err := q.Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Diagnosis, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.Diagnosis{
			ID:              row.DiagnosisID,
			PlotID:          row.PlotID,
			ImageURI:        row.ImageURI,
			Disease:         row.Disease,
			Pest:            row.Pest,
			HealthStatus:    entities.HealthStatus(row.HealthStatus),
			Confidence:      row.Confidence,
			Symptoms:        row.Symptoms,
			Recommendations: row.Recommendations,
			CreatedAt:       row.CreatedAt,
		})
	}
	return out, nil
}

func (r *sqliteRepo) User() (entities.User, error) {
	var row userRow
	if err := r.db.First(&row, profileSeq).Error; err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID: row.UserID, Name: row.Name, Email: row.Email,
		Farm: row.Farm, Location: row.Location, CreatedAt: row.CreatedAt,
	}, nil
}

// SetUser replaces the single profile row wholesale.
func (r *sqliteRepo) SetUser(u entities.User) error {
	row := userRow{
		Seq: profileSeq, UserID: u.ID, Name: u.Name, Email: u.Email,
		Farm: u.Farm, Location: u.Location, CreatedAt: u.CreatedAt,
	}
	return r.db.Save(&row).Error
}

func (r *sqliteRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
