package profile

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/geoforge/geoprofile/internal/refdata"
)

const (
	defaultMinAge = 18
	defaultMaxAge = 80

	priceMin = 5.00
	priceMax = 199.99

	taxStandard = 0.19
	taxReduced  = 0.07
)

var channels = []string{"Online", "In-Store"}

// Options tunes a Generator. The zero value selects the defaults.
type Options struct {
	// Seed fixes the random stream. Nil seeds from the clock.
	Seed *int64
	// MinAge/MaxAge bound the age implied by generated birthdays.
	// Zero means 18 and 80.
	MinAge int
	MaxAge int
}

// Generator composes profiles from reference tables and a single owned
// random stream. Every draw, across every field of every profile in a
// batch, consumes that one stream in a fixed order, so a seed reproduces
// the entire batch.
type Generator struct {
	tables *refdata.Tables
	rng    *rand.Rand
	minAge int
	maxAge int
	now    time.Time
}

// NewGenerator validates the reference tables and builds a generator.
func NewGenerator(tables *refdata.Tables, opts Options) (*Generator, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference data: %w", err)
	}
	minAge, maxAge := opts.MinAge, opts.MaxAge
	if minAge == 0 {
		minAge = defaultMinAge
	}
	if maxAge == 0 {
		maxAge = defaultMaxAge
	}
	if minAge < 0 || maxAge < minAge {
		return nil, fmt.Errorf("invalid age range %d-%d", minAge, maxAge)
	}
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	return &Generator{
		tables: tables,
		rng:    rand.New(rand.NewSource(seed)),
		minAge: minAge,
		maxAge: maxAge,
		now:    time.Now(),
	}, nil
}

// Generate produces count independent profiles in insertion order.
// count <= 0 yields an empty batch.
func (g *Generator) Generate(count int) []Profile {
	profiles := make([]Profile, 0, max(count, 0))
	for i := 0; i < count; i++ {
		profiles = append(profiles, g.Compose())
	}
	return profiles
}

// Compose assembles one profile. The draw order is fixed; changing it
// breaks seed reproducibility.
func (g *Generator) Compose() Profile {
	gender := g.gender()
	firstName := g.pick(g.tables.FirstNames(gender))
	lastName := g.pick(g.tables.LastNames())
	email := g.Email(firstName, lastName)

	state := g.pick(g.tables.States())
	zipCode := g.ZipCode(state)
	// City and street are drawn independently of the state, so the address
	// may pair a ZIP from one state with a city from another. Kept as-is;
	// downstream output depends on it.
	city := g.pick(g.tables.Cities())
	street := g.Street()

	birthday := g.Birthday()

	item := g.pick(g.tables.PurchaseItems())
	price := g.Price()
	quantity := g.Quantity()
	taxRate := g.TaxRate()
	channel := g.pick(channels)
	purchaseDate := g.PurchaseDate()

	subtotal := round2(price * float64(quantity))
	taxAmount := round2(subtotal * taxRate)
	total := round2(subtotal + taxAmount)

	coord := g.Coordinates(city)

	return Profile{
		FirstName:       firstName,
		LastName:        lastName,
		Gender:          gender,
		Email:           email,
		Birthday:        birthday,
		Street:          street,
		ZipCode:         zipCode,
		City:            city,
		State:           state,
		Latitude:        coord.Lat,
		Longitude:       coord.Lon,
		PurchaseItem:    item,
		UnitPrice:       price,
		Quantity:        quantity,
		TaxRate:         taxRate,
		Subtotal:        subtotal,
		TaxAmount:       taxAmount,
		Total:           total,
		PurchaseChannel: channel,
		PurchaseDate:    purchaseDate,
	}
}

// ZipCode draws a ZIP within the ranges registered for the state, rendered
// zero-padded to five digits. When a state has more than one range (only
// Sachsen does), one range is chosen uniformly first.
func (g *Generator) ZipCode(state string) string {
	ranges := g.tables.ZipRanges(state)
	r := ranges[0]
	if len(ranges) > 1 {
		r = ranges[g.rng.Intn(len(ranges))]
	}
	return fmt.Sprintf("%05d", r.Low+g.rng.Intn(r.High-r.Low+1))
}

// Coordinates resolves a city to coordinates, falling back to the national
// centroid for unknown cities. Never fails.
func (g *Generator) Coordinates(city string) refdata.Coord {
	if c, ok := g.tables.CityCoordinates(city); ok {
		return c
	}
	return refdata.Centroid
}

// Email builds a username from one of four layouts, lower-cased, with a
// random 1-100 digit suffix, at a random provider.
func (g *Generator) Email(firstName, lastName string) string {
	provider := g.pick(g.tables.EmailProviders())
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)
	digits := 1 + g.rng.Intn(100)

	var username string
	switch g.rng.Intn(4) {
	case 0:
		username = fmt.Sprintf("%s.%s%d", first, last, digits)
	case 1:
		username = fmt.Sprintf("%s%s%d", first[:1], last, digits)
	case 2:
		username = fmt.Sprintf("%s%s%d", first, last[:1], digits)
	default:
		username = fmt.Sprintf("%s.%s%d", last, first, digits)
	}
	return username + "@" + provider
}

// Street produces a street line like "Gartenstraße 42".
func (g *Generator) Street() string {
	name := g.pick(g.tables.StreetNames())
	suffix := g.pick(g.tables.StreetSuffixes())
	number := 1 + g.rng.Intn(199)
	return fmt.Sprintf("%s%s %d", name, suffix, number)
}

// Birthday draws a date of birth whose implied age lies in the configured
// inclusive range.
func (g *Generator) Birthday() time.Time {
	latest := g.now.AddDate(-g.minAge, 0, 0)
	earliest := g.now.AddDate(-(g.maxAge+1), 0, 1)
	days := int(latest.Sub(earliest).Hours() / 24)
	d := earliest.AddDate(0, 0, g.rng.Intn(days+1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Price draws a uniform price in [5.00, 199.99], rounded to cents.
func (g *Generator) Price() float64 {
	return round2(priceMin + g.rng.Float64()*(priceMax-priceMin))
}

// Quantity is 1 for 70% of purchases, otherwise uniform in [2,5].
func (g *Generator) Quantity() int {
	if g.rng.Float64() < 0.7 {
		return 1
	}
	return 2 + g.rng.Intn(4)
}

// TaxRate is the standard 19% rate for 80% of purchases, otherwise the
// reduced 7% rate.
func (g *Generator) TaxRate() float64 {
	if g.rng.Float64() < 0.8 {
		return taxStandard
	}
	return taxReduced
}

// PurchaseDate draws a timestamp within the current calendar year. The
// bound depends only on the year, keeping seeded runs reproducible.
func (g *Generator) PurchaseDate() time.Time {
	yearStart := time.Date(g.now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)
	seconds := int64(yearEnd.Sub(yearStart) / time.Second)
	return yearStart.Add(time.Duration(g.rng.Int63n(seconds)) * time.Second)
}

func (g *Generator) gender() refdata.Gender {
	if g.rng.Float64() < 0.5 {
		return refdata.Male
	}
	return refdata.Female
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
