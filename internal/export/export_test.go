package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geoforge/geoprofile/internal/profile"
	"github.com/geoforge/geoprofile/internal/refdata"
	"github.com/xuri/excelize/v2"
)

func testBatch(t *testing.T, count int) []profile.Profile {
	t.Helper()
	seed := int64(42)
	gen, err := profile.NewGenerator(refdata.Default(), profile.Options{Seed: &seed})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return gen.Generate(count)
}

func TestCSVExport(t *testing.T) {
	profiles := testBatch(t, 5)
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := (CSV{}).Export(profiles, path); err != nil {
		t.Fatalf("CSV export failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header + 5 rows, got %d records", len(records))
	}
	if records[0][0] != "first_name" || records[0][len(records[0])-1] != "purchase_date" {
		t.Errorf("unexpected header: %v", records[0])
	}
	for i, p := range profiles {
		if records[i+1][0] != p.FirstName {
			t.Errorf("row %d first name %q, want %q", i, records[i+1][0], p.FirstName)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	profiles := testBatch(t, 5)
	path := filepath.Join(t.TempDir(), "out.json")

	if err := (JSON{}).Export(profiles, path); err != nil {
		t.Fatalf("JSON export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read JSON: %v", err)
	}

	var back []profile.Profile
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if len(back) != len(profiles) {
		t.Fatalf("read back %d profiles, want %d", len(back), len(profiles))
	}
	for i := range profiles {
		if !profiles[i].PurchaseDate.Equal(back[i].PurchaseDate) || !profiles[i].Birthday.Equal(back[i].Birthday) {
			t.Errorf("profile %d dates changed through JSON round trip", i)
		}
		a, b := profiles[i], back[i]
		a.PurchaseDate, b.PurchaseDate = a.PurchaseDate.UTC(), b.PurchaseDate.UTC()
		a.Birthday, b.Birthday = a.Birthday.UTC(), b.Birthday.UTC()
		if a != b {
			t.Errorf("profile %d changed through JSON round trip:\n%+v\n%+v", i, a, b)
		}
	}
}

func TestJSONPreservesNonASCII(t *testing.T) {
	profiles := testBatch(t, 50)
	path := filepath.Join(t.TempDir(), "out.json")

	if err := (JSON{}).Export(profiles, path); err != nil {
		t.Fatalf("JSON export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read JSON: %v", err)
	}
	if strings.Contains(string(data), `\u00`) {
		t.Error("JSON output escapes non-ASCII characters")
	}
}

func TestExcelExport(t *testing.T) {
	profiles := testBatch(t, 3)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := (Excel{}).Export(profiles, path); err != nil {
		t.Fatalf("Excel export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "first_name" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != profiles[0].FirstName {
		t.Errorf("first cell %q, want %q", rows[1][0], profiles[0].FirstName)
	}
}

func TestSQLiteExport(t *testing.T) {
	if !(SQLite{}).Available() {
		t.Skip("sqlite driver unavailable in this build")
	}

	profiles := testBatch(t, 4)
	path := filepath.Join(t.TempDir(), "out.db")

	if err := (SQLite{}).Export(profiles, path); err != nil {
		t.Fatalf("SQLite export failed: %v", err)
	}

	count, err := countProfileRows(path)
	if err != nil {
		t.Fatalf("failed to query exported database: %v", err)
	}
	if count != len(profiles) {
		t.Errorf("exported %d rows, want %d", count, len(profiles))
	}
}

func TestHTMLMapExport(t *testing.T) {
	profiles := testBatch(t, 3)
	path := filepath.Join(t.TempDir(), "out_map.html")

	m := HTMLMap{}
	if !m.Available() {
		t.Fatal("map exporter should be available")
	}
	if err := m.Export(profiles, path); err != nil {
		t.Fatalf("map export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read map: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "L.map") {
		t.Error("map output missing Leaflet initialization")
	}
	if got := strings.Count(html, "cluster.addLayer"); got != len(profiles) {
		t.Errorf("expected %d markers, found %d", len(profiles), got)
	}
	if !strings.Contains(html, profiles[0].FirstName) {
		t.Error("popup does not include profile name")
	}
}

type failingExporter struct{}

func (failingExporter) Name() string    { return "Failing" }
func (failingExporter) Available() bool { return true }
func (failingExporter) Export([]profile.Profile, string) error {
	return errors.New("boom")
}

type unavailableExporter struct{}

func (unavailableExporter) Name() string    { return "Unavailable" }
func (unavailableExporter) Available() bool { return false }
func (unavailableExporter) Export([]profile.Profile, string) error {
	return errors.New("should never run")
}

func TestRunContinuesPastFailures(t *testing.T) {
	profiles := testBatch(t, 2)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")

	targets := []Target{
		{Exporter: failingExporter{}, Path: filepath.Join(dir, "fail")},
		{Exporter: unavailableExporter{}, Path: filepath.Join(dir, "skip")},
		{Exporter: CSV{}, Path: csvPath},
	}
	if err := Run(profiles, targets); err != nil {
		t.Fatalf("Run failed despite one successful export: %v", err)
	}
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("CSV sibling was not written: %v", err)
	}
}

func TestRunAllFailed(t *testing.T) {
	profiles := testBatch(t, 1)
	targets := []Target{
		{Exporter: failingExporter{}, Path: "x"},
	}
	if err := Run(profiles, targets); err == nil {
		t.Error("expected error when every export fails")
	}
}

func TestRunSkippedOnlyIsNotFailure(t *testing.T) {
	profiles := testBatch(t, 1)
	targets := []Target{
		{Exporter: unavailableExporter{}, Path: "x"},
	}
	if err := Run(profiles, targets); err != nil {
		t.Errorf("a skipped capability must not fail the run: %v", err)
	}
}
