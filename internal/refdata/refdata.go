// Package refdata holds the static reference tables the profile generator
// draws from: states, ZIP ranges, name pools, email providers, city
// coordinates and the purchase catalog. Tables are built once and never
// mutated afterwards; the generator holds them by reference.
package refdata

import "fmt"

// Gender selects a first-name pool.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ZipRange is an inclusive numeric ZIP code range.
type ZipRange struct {
	Low  int
	High int
}

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64
	Lon float64
}

// Centroid is the approximate geographic center of Germany, used when a
// city has no registered coordinates.
var Centroid = Coord{Lat: 51.1657, Lon: 10.4515}

// defaultZipState backs lookups for unknown states.
const defaultZipState = "Berlin"

// Tables is the immutable reference data set for one generator.
type Tables struct {
	states           []string
	zipRanges        map[string][]ZipRange
	firstNamesMale   []string
	firstNamesFemale []string
	lastNames        []string
	emailProviders   []string
	cityCoords       map[string]Coord
	cities           []string
	streetNames      []string
	streetSuffixes   []string
	purchaseItems    []string
}

// Default returns the built-in German reference tables.
func Default() *Tables {
	return &Tables{
		states:           states,
		zipRanges:        zipRanges,
		firstNamesMale:   firstNamesMale,
		firstNamesFemale: firstNamesFemale,
		lastNames:        lastNames,
		emailProviders:   emailProviders,
		cityCoords:       cityCoords,
		cities:           cities,
		streetNames:      streetNames,
		streetSuffixes:   streetSuffixes,
		purchaseItems:    purchaseItems,
	}
}

// States returns the ordered set of state names.
func (t *Tables) States() []string { return t.states }

// ZipRanges returns the ZIP ranges registered for a state. An unknown state
// falls back to the capital's range; this is deliberate policy, not an error.
func (t *Tables) ZipRanges(state string) []ZipRange {
	if ranges, ok := t.zipRanges[state]; ok {
		return ranges
	}
	return t.zipRanges[defaultZipState]
}

// FirstNames returns the first-name pool for a gender.
func (t *Tables) FirstNames(g Gender) []string {
	if g == Female {
		return t.firstNamesFemale
	}
	return t.firstNamesMale
}

func (t *Tables) LastNames() []string      { return t.lastNames }
func (t *Tables) EmailProviders() []string { return t.emailProviders }
func (t *Tables) Cities() []string         { return t.cities }
func (t *Tables) StreetNames() []string    { return t.streetNames }
func (t *Tables) StreetSuffixes() []string { return t.streetSuffixes }
func (t *Tables) PurchaseItems() []string  { return t.purchaseItems }

// CityCoordinates looks up the coordinates of a city. A miss is a valid
// outcome; callers fall back to Centroid.
func (t *Tables) CityCoordinates(city string) (Coord, bool) {
	c, ok := t.cityCoords[city]
	return c, ok
}

// Validate checks that every pool the composer samples from is non-empty.
// An empty pool is a configuration error and aborts before generation.
func (t *Tables) Validate() error {
	pools := []struct {
		name string
		size int
	}{
		{"states", len(t.states)},
		{"first_names_male", len(t.firstNamesMale)},
		{"first_names_female", len(t.firstNamesFemale)},
		{"last_names", len(t.lastNames)},
		{"email_providers", len(t.emailProviders)},
		{"cities", len(t.cities)},
		{"street_names", len(t.streetNames)},
		{"street_suffixes", len(t.streetSuffixes)},
		{"purchase_items", len(t.purchaseItems)},
	}
	for _, p := range pools {
		if p.size == 0 {
			return fmt.Errorf("reference pool %s is empty", p.name)
		}
	}
	if len(t.zipRanges) == 0 {
		return fmt.Errorf("no ZIP ranges registered")
	}
	if _, ok := t.zipRanges[defaultZipState]; !ok {
		return fmt.Errorf("fallback state %s has no ZIP range", defaultZipState)
	}
	for state, ranges := range t.zipRanges {
		for _, r := range ranges {
			if r.Low > r.High {
				return fmt.Errorf("invalid ZIP range %d-%d for %s", r.Low, r.High, state)
			}
		}
	}
	return nil
}
