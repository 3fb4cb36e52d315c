package source

import (
	"testing"

	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/hvakosterstrommen"
	"github.com/angas/pricepulse/nordpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := "http://localhost:1234/prices"

	tests := []struct {
		name    string
		cnfg    config.AppConfigPrices
		wantURL string
		wantErr bool
	}{
		{"default", config.AppConfigPrices{}, hvakosterstrommen.DefaultBaseURL, false},
		{"nordpool", config.AppConfigPrices{Source: "NordPool"}, nordpool.DefaultBaseURL, false},
		{"custom url", config.AppConfigPrices{Source: "hvakosterstrommen", BaseURL: &custom}, custom, false},
		{"unknown", config.AppConfigPrices{Source: "tibber"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, url, err := New(tt.cnfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestNewProviderType(t *testing.T) {
	provider, _, err := New(config.AppConfigPrices{Source: Nordpool})
	require.NoError(t, err)
	assert.IsType(t, &nordpool.Nordpool{}, provider)

	provider, _, err = New(config.AppConfigPrices{})
	require.NoError(t, err)
	assert.IsType(t, &hvakosterstrommen.Client{}, provider)
}
