package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/geoforge/geoprofile/internal/profile"
)

// CSV writes profiles as a comma-separated file with a header row.
type CSV struct{}

func (CSV) Name() string    { return "CSV" }
func (CSV) Available() bool { return true }

func (CSV) Export(profiles []profile.Profile, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(profile.Columns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range profiles {
		if err := writer.Write(p.Row()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
