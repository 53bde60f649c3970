package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinford/fab-export/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRunReportJSON(t *testing.T) {
	report := &runner.RunReport{
		RunID: uuid.New(),
		Outcomes: []runner.JobOutcome{
			{JobName: "schematic_pdf", Kind: runner.OutcomeSuccess, Duration: 2 * time.Second},
			{JobName: "drc", Kind: runner.OutcomeFailure, Duration: 3 * time.Second},
			{JobName: "render_3d", Kind: runner.OutcomeError, Detail: "tool crashed", Duration: 5 * time.Second},
		},
		Elapsed: 12 * time.Second,
	}

	outputPath := filepath.Join(t.TempDir(), "run_report.json")
	err := WriteRunReportJSON(report, outputPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var loaded runner.RunReport
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, report.RunID, loaded.RunID)
	require.Len(t, loaded.Outcomes, 3)
	assert.Equal(t, runner.OutcomeSuccess, loaded.Outcomes[0].Kind)
	assert.Equal(t, "tool crashed", loaded.Outcomes[2].Detail)
	assert.Equal(t, report.Elapsed, loaded.Elapsed)
}
