package types

import (
	"fmt"
	"strings"
)

// Region is one of the five Norwegian electricity price zones.
type Region string

const (
	RegionNO1 Region = "NO1"
	RegionNO2 Region = "NO2"
	RegionNO3 Region = "NO3"
	RegionNO4 Region = "NO4"
	RegionNO5 Region = "NO5"
)

var regionNames = map[Region]string{
	RegionNO1: "Oslo / East Norway",
	RegionNO2: "Kristiansand / South Norway",
	RegionNO3: "Trondheim / Mid Norway",
	RegionNO4: "Tromsø / North Norway",
	RegionNO5: "Bergen / West Norway",
}

func Regions() []Region {
	return []Region{RegionNO1, RegionNO2, RegionNO3, RegionNO4, RegionNO5}
}

func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := regionNames[r]; !ok {
		return "", fmt.Errorf("unknown price region %q", s)
	}
	return r, nil
}

func (r Region) String() string {
	return string(r)
}

func (r Region) DisplayName() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return string(r)
}
