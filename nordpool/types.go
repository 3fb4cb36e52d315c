package nordpool

import "time"

const DefaultBaseURL = "https://dataportal-api.nordpoolgroup.com"

type nordpoolData struct {
	DeliveryDateCET  string            `json:"deliveryDateCET"`
	Version          int               `json:"version"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	DeliveryAreas    []string          `json:"deliveryAreas"`
	Market           string            `json:"market"`
	MultiAreaEntries []multiAreaEntry  `json:"multiAreaEntries"`
	Currency         string            `json:"currency"`
	ExchangeRate     float64           `json:"exchangeRate"`
	AreaStates       []areaState       `json:"areaStates"`
	AreaAverages     []areaAveragePair `json:"areaAverages"`
}

type multiAreaEntry struct {
	DeliveryStart time.Time          `json:"deliveryStart"`
	DeliveryEnd   time.Time          `json:"deliveryEnd"`
	EntryPerArea  map[string]float64 `json:"entryPerArea"`
}

type areaState struct {
	State string   `json:"state"`
	Areas []string `json:"areas"`
}

type areaAveragePair struct {
	AreaCode string  `json:"areaCode"`
	Price    float64 `json:"price"`
}
