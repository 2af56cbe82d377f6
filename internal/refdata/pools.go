package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PoolFile is an optional YAML document that swaps out individual reference
// pools. Omitted pools keep their built-in values.
type PoolFile struct {
	FirstNamesMale   []string `yaml:"first_names_male"`
	FirstNamesFemale []string `yaml:"first_names_female"`
	LastNames        []string `yaml:"last_names"`
	EmailProviders   []string `yaml:"email_providers"`
	Cities           []string `yaml:"cities"`
	StreetNames      []string `yaml:"street_names"`
	PurchaseItems    []string `yaml:"purchase_items"`
}

// LoadPoolFile reads and parses a pool override file.
func LoadPoolFile(path string) (*PoolFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool file: %w", err)
	}
	var pf PoolFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse pool file %s: %w", path, err)
	}
	return &pf, nil
}

// ApplyPools overlays the non-nil pools from pf onto the tables. A pool that
// is present in the file but empty is rejected; the composer cannot sample
// from an empty pool.
func (t *Tables) ApplyPools(pf *PoolFile) error {
	overlays := []struct {
		name string
		src  []string
		dst  *[]string
	}{
		{"first_names_male", pf.FirstNamesMale, &t.firstNamesMale},
		{"first_names_female", pf.FirstNamesFemale, &t.firstNamesFemale},
		{"last_names", pf.LastNames, &t.lastNames},
		{"email_providers", pf.EmailProviders, &t.emailProviders},
		{"cities", pf.Cities, &t.cities},
		{"street_names", pf.StreetNames, &t.streetNames},
		{"purchase_items", pf.PurchaseItems, &t.purchaseItems},
	}
	for _, o := range overlays {
		if o.src == nil {
			continue
		}
		if len(o.src) == 0 {
			return fmt.Errorf("pool %s in override file is empty", o.name)
		}
		*o.dst = o.src
	}
	return nil
}
