// Package export writes the session comparison as an XLSX workbook or a
// PDF document, for keeping the numbers after the console session ends.
package export

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
)

// BuildXLSX renders the registry as a workbook: a summary sheet with the
// tariff and session totals, a devices sheet with one row per record in
// insertion order, and an embedded bar chart of monthly cost per device.
func BuildXLSX(reg *device.Registry, pricePerKWh float64, currency string) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "resumo"
	devicesSheet := "dispositivos"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(devicesSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Consumo de Energia - Comparativo")
	_ = f.SetCellValue(summarySheet, "A3", "Tarifa ("+currency+"/kWh)")
	_ = f.SetCellValue(summarySheet, "B3", pricePerKWh)
	_ = f.SetCellValue(summarySheet, "A4", "Dispositivos")
	_ = f.SetCellValue(summarySheet, "B4", reg.Len())
	_ = f.SetCellValue(summarySheet, "A5", "Consumo total (kWh/mês)")
	_ = f.SetCellValue(summarySheet, "B5", reg.TotalKWh())
	_ = f.SetCellValue(summarySheet, "A6", "Custo total ("+currency+"/mês)")
	_ = f.SetCellValue(summarySheet, "B6", reg.TotalCost())
	_ = f.SetCellValue(summarySheet, "A7", "Gerado em")
	_ = f.SetCellValue(summarySheet, "B7", time.Now().Format(time.RFC3339))

	_ = f.SetCellValue(devicesSheet, "A1", "Nome")
	_ = f.SetCellValue(devicesSheet, "B1", "Potência (W)")
	_ = f.SetCellValue(devicesSheet, "C1", "Horas/dia")
	_ = f.SetCellValue(devicesSheet, "D1", "Dias/mês")
	_ = f.SetCellValue(devicesSheet, "E1", "Consumo (kWh)")
	_ = f.SetCellValue(devicesSheet, "F1", "Custo ("+currency+")")
	for i, rec := range reg.All() {
		row := i + 2
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("A%d", row), rec.Name)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("B%d", row), rec.PowerWatts)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("C%d", row), rec.HoursPerDay)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("D%d", row), rec.DaysPerMonth)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("E%d", row), rec.MonthlyKWh)
		_ = f.SetCellValue(devicesSheet, fmt.Sprintf("F%d", row), rec.MonthlyCost)
	}

	if reg.Len() > 0 {
		lastRow := reg.Len() + 1
		err := f.AddChart(devicesSheet, "H2", &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{
				{
					Name:       fmt.Sprintf("%s!$F$1", devicesSheet),
					Categories: fmt.Sprintf("%s!$A$2:$A$%d", devicesSheet, lastRow),
					Values:     fmt.Sprintf("%s!$F$2:$F$%d", devicesSheet, lastRow),
				},
			},
			Title: []excelize.RichTextRun{
				{Text: "Custo Mensal por Dispositivo"},
			},
		})
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPDF renders the registry as a PDF mirroring the console table.
func BuildPDF(reg *device.Registry, pricePerKWh float64, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Consumo de Energia - Comparativo")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Tarifa: %s%.2f/kWh", currency, pricePerKWh))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Gerado em: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Nome", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Potência (W)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Horas/dia", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Dias/mês", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "kWh", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Custo", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, rec := range reg.All() {
		pdf.CellFormat(50, 6, rec.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", rec.PowerWatts), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", rec.HoursPerDay), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", rec.DaysPerMonth), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", rec.MonthlyKWh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", rec.MonthlyCost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", reg.TotalKWh()), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", reg.TotalCost()), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile saves an exported report to disk.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}
