package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrig/entrig/internal/domain/values"
)

func TestJSONFormatter_Format(t *testing.T) {
	report := sampleReport(values.StatusPatched, values.StatusSkippedMissingTarget)

	for _, indent := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter(&buf, indent).Format(report))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

		assert.Equal(t, report.RunID.String(), decoded["run_id"])
		assert.Equal(t, "1.2.3", decoded["tool_version"])

		results := decoded["results"].([]interface{})
		require.Len(t, results, 2)
		first := results[0].(map[string]interface{})
		assert.Equal(t, "patched", first["status"])
		assert.Contains(t, first, "backup_path")

		summary := decoded["summary"].(map[string]interface{})
		assert.EqualValues(t, 1, summary["skipped"])
		assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	report := sampleReport(values.StatusAlreadySatisfied)

	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(report))

	out := buf.String()
	assert.Contains(t, out, "app_name: Demo")
	assert.Contains(t, out, "status: already-satisfied")
	assert.Contains(t, out, "dry_run: false")

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "summary")
}
