package kicad

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// convertCSVToXLSX はBOMのCSVをExcelブックに変換します
func convertCSVToXLSX(csvPath, xlsxPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open BOM csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // 列数の揺れを許容する
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse BOM csv: %w", err)
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "Sheet1"
	for rowIdx, record := range records {
		for colIdx, value := range record {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := workbook.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	if err := workbook.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}
	return nil
}
