package serviceImp

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"farmai/entities"
)

const (
	SheetDiagnoses       = "Diagnosticos"
	SheetRecommendations = "Recomendaciones"
)

var (
	diagnosisHeader      = []any{"ID", "Lote", "Imagen", "Enfermedad", "Plaga", "Estado", "Confianza", "Síntomas", "Fecha"}
	recommendationHeader = []any{"Diagnóstico", "ID", "Tipo", "Producto", "Dosis", "Frecuencia", "Duración", "Descripción", "Costo", "Prioridad"}
)

func (s *diagnoseSvc) Export(w io.Writer) error {
	diags, err := s.r.Diagnoses()
	if err != nil {
		return fmt.Errorf("list diagnoses: %w", err)
	}
	f, err := buildWorkbook(diags)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func buildWorkbook(diags []entities.Diagnosis) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetDiagnoses); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetRecommendations); err != nil {
		f.Close()
		return nil, err
	}

	if err := setRow(f, SheetDiagnoses, 1, diagnosisHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := setRow(f, SheetRecommendations, 1, recommendationHeader); err != nil {
		f.Close()
		return nil, err
	}

	recRow := 2
	for i, d := range diags {
		row := []any{
			d.ID, d.PlotID, d.ImageURI, deref(d.Disease), deref(d.Pest),
			string(d.HealthStatus), d.Confidence, strings.Join(d.Symptoms, "; "),
			d.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := setRow(f, SheetDiagnoses, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
		for _, r := range d.Recommendations {
			var cost any = ""
			if r.Cost != nil {
				cost = *r.Cost
			}
			row := []any{
				d.ID, r.ID, string(r.Type), deref(r.Product), deref(r.Dosage),
				deref(r.Frequency), deref(r.Duration), r.Description, cost, string(r.Priority),
			}
			if err := setRow(f, SheetRecommendations, recRow, row); err != nil {
				f.Close()
				return nil, err
			}
			recRow++
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
