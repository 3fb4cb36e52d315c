package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotPricesCommand(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"NOK_per_kWh": 1.0, "EUR_per_kWh": 0.09, "EXR": 11.5, "time_start": "2024-05-01T00:00:00+02:00", "time_end": "2024-05-01T01:00:00+02:00"},
			{"NOK_per_kWh": 2.0, "EUR_per_kWh": 0.18, "EXR": 11.5, "time_start": "2024-05-01T01:00:00+02:00", "time_end": "2024-05-01T02:00:00+02:00"}
		]`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--region", "no3", "--appliance", "oven", "--date", "2024-05-01", "--base-url", srv.URL})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "/2024/05-01_NO3.json", requested)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Trondheim / Mid Norway (NO3) 2024-05-01 Oven", lines[0])
	assert.Equal(t, "00:00-01:00 | 0.95 NOK", lines[1])
	assert.Equal(t, "01:00-02:00 | 1.89 NOK", lines[2])
}

func TestSpotPricesCommandInvalidFlags(t *testing.T) {
	tests := [][]string{
		{"--region", "SE3"},
		{"--appliance", "sauna"},
		{"--date", "01.05.2024"},
		{"--source", "tibber"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)
			assert.Error(t, cmd.Execute())
		})
	}
}
