package types

import (
	"fmt"
	"strings"
)

type Appliance string

const (
	ApplianceWashing Appliance = "Washing"
	ApplianceOven    Appliance = "Oven"
	ApplianceHeater  Appliance = "Heater"
	ApplianceShower  Appliance = "Shower"
)

// kWh used by one run of the appliance
var applianceMultipliers = map[Appliance]float64{
	ApplianceWashing: 0.57,
	ApplianceOven:    0.946,
	ApplianceHeater:  0.53,
	ApplianceShower:  6,
}

func Appliances() []Appliance {
	return []Appliance{ApplianceWashing, ApplianceOven, ApplianceHeater, ApplianceShower}
}

func ParseAppliance(s string) (Appliance, error) {
	for _, a := range Appliances() {
		if strings.EqualFold(string(a), strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown appliance %q", s)
}

// Multiplier returns 1 for unknown appliances, i.e. the raw price series.
func (a Appliance) Multiplier() float64 {
	if m, ok := applianceMultipliers[a]; ok {
		return m
	}
	return 1
}

func (a Appliance) String() string {
	return string(a)
}
