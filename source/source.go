package source

import (
	"fmt"

	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/hvakosterstrommen"
	"github.com/angas/pricepulse/nordpool"
	"github.com/angas/pricepulse/types"
)

const (
	Hvakosterstrommen = "hvakosterstrommen"
	Nordpool          = "nordpool"
)

// New returns the configured spot price provider and the base URL it
// fetches from. Exactly one source is used, there is no fallback.
func New(cnfg config.AppConfigPrices) (types.SpotPriceProvider, string, error) {
	baseURL := cnfg.GetBaseURL()
	switch cnfg.GetSource() {
	case Hvakosterstrommen:
		if baseURL == "" {
			baseURL = hvakosterstrommen.DefaultBaseURL
		}
		return hvakosterstrommen.New(baseURL, cnfg.GetTimeout()), baseURL, nil
	case Nordpool:
		if baseURL == "" {
			baseURL = nordpool.DefaultBaseURL
		}
		return nordpool.New(baseURL, cnfg.GetTimeout()), baseURL, nil
	default:
		return nil, "", fmt.Errorf("unknown price source %q", cnfg.GetSource())
	}
}
