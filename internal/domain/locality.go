package domain

import (
	"slices"
	"strings"
)

// Localities maps a region code (e.g. "SP") to its city names.
// Values are kept sorted; treat a loaded Localities as read-only.
type Localities map[string][]string

// NewLocalities builds a Localities from raw data, sorting every city list.
// Empty region codes and blank city names are dropped.
func NewLocalities(raw map[string][]string) Localities {
	l := make(Localities, len(raw))
	for region, cities := range raw {
		region = strings.TrimSpace(region)
		if region == "" {
			continue
		}
		list := make([]string, 0, len(cities))
		for _, c := range cities {
			if c = strings.TrimSpace(c); c != "" {
				list = append(list, c)
			}
		}
		slices.Sort(list)
		l[region] = list
	}
	return l
}

// FallbackLocalities returns the embedded table used when the remote lookup fails.
func FallbackLocalities() Localities {
	return NewLocalities(map[string][]string{
		"SP": {"São Paulo", "Campinas", "Guarulhos"},
		"RJ": {"Rio de Janeiro", "Niterói", "Duque de Caxias"},
		"MG": {"Belo Horizonte", "Uberlândia"},
		"AL": {"Maceió", "Arapiraca"},
	})
}

// Regions returns the region codes in ascending order.
func (l Localities) Regions() []string {
	regions := make([]string, 0, len(l))
	for r := range l {
		regions = append(regions, r)
	}
	slices.Sort(regions)
	return regions
}

// Cities returns a copy of the sorted city list for region, or nil if unknown.
func (l Localities) Cities(region string) []string {
	cities, ok := l[region]
	if !ok {
		return nil
	}
	return slices.Clone(cities)
}

// Contains reports whether city belongs to region.
func (l Localities) Contains(region, city string) bool {
	_, found := slices.BinarySearch(l[region], city)
	return found
}
