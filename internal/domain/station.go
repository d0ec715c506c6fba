package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownStation is returned when a station name is not one of the five
// fixed stations.
var ErrUnknownStation = errors.New("unknown station")

// Station labels the origin of an observation.
type Station int

const (
	StationA Station = iota
	StationB
	StationC
	StationD
	StationE
)

var stationNames = [...]string{
	StationA: "StationA",
	StationB: "StationB",
	StationC: "StationC",
	StationD: "StationD",
	StationE: "StationE",
}

// Stations returns every station in declaration order.
func Stations() []Station {
	return []Station{StationA, StationB, StationC, StationD, StationE}
}

func (s Station) String() string {
	if s < 0 || int(s) >= len(stationNames) {
		return fmt.Sprintf("Station(%d)", int(s))
	}
	return stationNames[s]
}

// ParseStation maps a canonical station name back to its value.
func ParseStation(name string) (Station, error) {
	for i, n := range stationNames {
		if n == name {
			return Station(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStation, name)
}

func (s Station) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Station) UnmarshalText(text []byte) error {
	v, err := ParseStation(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
