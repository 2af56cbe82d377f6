// Package profile synthesizes internally consistent fictional person and
// purchase records. One Generator owns one random stream; seeding that
// stream makes whole batches reproducible.
package profile

import (
	"strconv"
	"time"

	"github.com/geoforge/geoprofile/internal/refdata"
)

// Profile is one synthesized person+purchase+location record. It is
// assembled in a single pass and never modified afterwards.
type Profile struct {
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Gender    refdata.Gender `json:"gender"`
	Email     string         `json:"email"`

	Birthday time.Time `json:"birthday"`
	Street   string    `json:"street"`
	ZipCode  string    `json:"zip_code"`
	City     string    `json:"city"`
	State    string    `json:"state"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	PurchaseItem    string    `json:"purchase_item"`
	UnitPrice       float64   `json:"unit_price"`
	Quantity        int       `json:"quantity"`
	TaxRate         float64   `json:"tax_rate"`
	Subtotal        float64   `json:"subtotal"`
	TaxAmount       float64   `json:"tax_amount"`
	Total           float64   `json:"total"`
	PurchaseChannel string    `json:"purchase_channel"`
	PurchaseDate    time.Time `json:"purchase_date"`
}

// Columns is the fixed export column order shared by every tabular writer.
func Columns() []string {
	return []string{
		"first_name", "last_name", "gender", "email", "birthday", "street",
		"zip_code", "city", "state", "latitude", "longitude", "purchase_item",
		"unit_price", "quantity", "tax_rate", "subtotal", "tax_amount",
		"total", "purchase_channel", "purchase_date",
	}
}

// Row renders the profile as strings in Columns order, for CSV output.
func (p Profile) Row() []string {
	return []string{
		p.FirstName,
		p.LastName,
		string(p.Gender),
		p.Email,
		p.Birthday.Format("2006-01-02"),
		p.Street,
		p.ZipCode,
		p.City,
		p.State,
		strconv.FormatFloat(p.Latitude, 'f', 4, 64),
		strconv.FormatFloat(p.Longitude, 'f', 4, 64),
		p.PurchaseItem,
		strconv.FormatFloat(p.UnitPrice, 'f', 2, 64),
		strconv.Itoa(p.Quantity),
		strconv.FormatFloat(p.TaxRate, 'f', 2, 64),
		strconv.FormatFloat(p.Subtotal, 'f', 2, 64),
		strconv.FormatFloat(p.TaxAmount, 'f', 2, 64),
		strconv.FormatFloat(p.Total, 'f', 2, 64),
		p.PurchaseChannel,
		p.PurchaseDate.Format("2006-01-02 15:04:05"),
	}
}

// Values returns the profile fields as typed values in Columns order, for
// writers that keep native types (spreadsheet cells, SQL parameters).
func (p Profile) Values() []interface{} {
	return []interface{}{
		p.FirstName,
		p.LastName,
		string(p.Gender),
		p.Email,
		p.Birthday.Format("2006-01-02"),
		p.Street,
		p.ZipCode,
		p.City,
		p.State,
		p.Latitude,
		p.Longitude,
		p.PurchaseItem,
		p.UnitPrice,
		p.Quantity,
		p.TaxRate,
		p.Subtotal,
		p.TaxAmount,
		p.Total,
		p.PurchaseChannel,
		p.PurchaseDate.Format("2006-01-02 15:04:05"),
	}
}
