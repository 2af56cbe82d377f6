package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/geoforge/geoprofile/internal/profile"
)

// JSON writes the batch as one indented array. Non-ASCII characters are
// written as-is, matching the UTF-8 reference data.
type JSON struct{}

func (JSON) Name() string    { return "JSON" }
func (JSON) Available() bool { return true }

func (JSON) Export(profiles []profile.Profile, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(profiles); err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	return nil
}
