package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into a temp dir so no config.yaml or .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		runInput, runFacilities, runOutput = "", "", ""
	})
	return rootCmd.Execute()
}

func TestRunCommand_MissingAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FACILITY_DISTANCE_API_KEY", "")

	err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance.api_key is required")
}

func TestCheckCommand_NetworkDown(t *testing.T) {
	chdirTemp(t)
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	t.Setenv("FACILITY_DISTANCE_API_KEY", "test-key")
	t.Setenv("FACILITY_PRECHECK_NETWORK_URL", down.URL)

	err := execute(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network connectivity test failed")
}

func TestRunCommand_EndToEnd(t *testing.T) {
	dir := chdirTemp(t)

	network := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer network.Close()

	maps := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("origins") == "New York,NY" {
			_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"text":"4,489 km","value":4489000},"duration":{"text":"1 day","value":150000}}]}]}`)) //nolint:errcheck
			return
		}
		assert.Equal(t, "00501|60601", r.URL.Query().Get("destinations"))
		_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[` + //nolint:errcheck
			`{"status":"OK","distance":{"text":"1,000 km","value":1000000},"duration":{"text":"10 hours","value":36000}},` +
			`{"status":"OK","distance":{"text":"10 km","value":10000},"duration":{"text":"12 mins","value":720}}` +
			`]}]}`))
	}))
	defer maps.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "staff.csv"), []byte("Name,Employee Zip\nJane Doe,10001\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sites.csv"), []byte("Facility Zip,Airport Code\n00501,ISP\n60601,ORD\n"), 0o644))

	t.Setenv("FACILITY_DISTANCE_API_KEY", "test-key")
	t.Setenv("FACILITY_DISTANCE_BASE_URL", maps.URL)
	t.Setenv("FACILITY_PRECHECK_NETWORK_URL", network.URL)

	out := filepath.Join(dir, "closest.xlsx")
	require.NoError(t, execute(t, "run", "--input", "staff.csv", "--facilities", "sites.csv", "--output", out))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}
