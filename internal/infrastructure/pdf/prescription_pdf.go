package pdf

import (
	"bytes"
	"fmt"
	"time"

	"healthcare-management-system/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "2006-01-02"

var prescriptionColumns = []struct {
	title string
	width float64
}{
	{"Medication", 38},
	{"Dosage", 24},
	{"Frequency", 28},
	{"Instructions", 50},
	{"Start Date", 25},
	{"End Date", 25},
}

// RenderPrescriptions lays out the patient's prescriptions as an A4 table.
func RenderPrescriptions(patient *entity.User, prescriptions []entity.Prescription, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 70, 140)
	pdf.CellFormat(0, 10, "MediCure - Prescriptions", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Patient: %s", patient.FullName())), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Email: %s", patient.Email)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 230, 241)
	for _, col := range prescriptionColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, p := range prescriptions {
		values := []string{
			p.MedicationName,
			p.Dosage,
			p.Frequency,
			p.Instructions,
			p.StartDate.Format(dateLayout),
			p.EndDate.Format(dateLayout),
		}
		for i, col := range prescriptionColumns {
			pdf.CellFormat(col.width, 7, tr(truncate(values[i], int(col.width/2))), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		if p.Prescriber != nil {
			pdf.SetFont("Arial", "I", 8)
			pdf.CellFormat(0, 5, tr(fmt.Sprintf("Prescribed by Dr. %s", p.Prescriber.FullName())), "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", generatedAt.Format("2006-01-02 15:04")), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render prescription pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "."
}
