package summary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jinford/fab-export/pkg/runner"
)

// WriteRunReportJSON はRunReportをJSONファイルに書き出します
func WriteRunReportJSON(report *runner.RunReport, outputPath string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}
