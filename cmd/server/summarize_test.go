package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"dealer-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEvents = `[
  {"kind":"$pageview","timestamp":"2025-12-22T10:00:00Z","distinctId":"u1","properties":{"currentUrl":"https://dealer.example/trucks/123?utm=x","deviceType":"Mobile"}},
  {"kind":"$pageview","timestamp":"2025-12-23T10:00:00Z","distinctId":"u2","properties":{"currentUrl":"https://dealer.example/trucks/123","deviceType":"Desktop"}},
  {"kind":"test_drive_booked","timestamp":"2025-12-23T10:05:00Z","distinctId":"u2","properties":{}},
  {"kind":"$pageview","timestamp":"2026-01-05T10:00:00Z","distinctId":"u3","properties":{}}
]`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummarizeCmd(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(file, []byte(sampleEvents), 0o600))

	out, err := runCmd(t, "summarize", "--file", file, "--from", "2025-12-22T00:00:00Z", "--to", "2025-12-28T23:59:59Z")
	require.NoError(t, err)

	var summary models.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.TotalUsers)
	assert.Equal(t, 2, summary.TotalPageviews)
	assert.Equal(t, 1, summary.TotalEvents)
	assert.Equal(t, []models.PageCount{{Page: "/trucks/123", Views: 2}}, summary.TopPages)
	assert.Equal(t, []models.EventCount{{Event: "test_drive_booked", Count: 1}}, summary.TopEvents)
	assert.Len(t, summary.PageviewsOverTime, 7)
}

func TestSummarizeCmd_NonNumericSessionDurationIsIgnored(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
  {"kind":"$pageview","timestamp":"2025-12-22T10:00:00Z","distinctId":"u1","properties":{"sessionDuration":"12"}},
  {"kind":"$pageview","timestamp":"2025-12-22T11:00:00Z","distinctId":"u2","properties":{"sessionDuration":30}}
]`), 0o600))

	out, err := runCmd(t, "summarize", "--file", file, "--from", "2025-12-22T00:00:00Z", "--to", "2025-12-28T23:59:59Z")
	require.NoError(t, err)

	var summary models.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.TotalPageviews)
	assert.Equal(t, 30.0, summary.AvgSessionDuration)
}

func TestSummarizeCmd_Errors(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"not":"an array"}`), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing flags", args: []string{"summarize"}},
		{name: "bad from", args: []string{"summarize", "--file", file, "--from", "monday", "--to", "2025-12-28T00:00:00Z"}},
		{name: "missing file", args: []string{"summarize", "--file", file + ".missing", "--from", "2025-12-22T00:00:00Z", "--to", "2025-12-28T00:00:00Z"}},
		{name: "not an array", args: []string{"summarize", "--file", file, "--from", "2025-12-22T00:00:00Z", "--to", "2025-12-28T00:00:00Z"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := runCmd(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
