package export

import (
	"fmt"
	"html/template"
	"os"

	"github.com/geoforge/geoprofile/internal/profile"
)

// HTMLMap renders an interactive Leaflet map with one clustered marker per
// profile; the popup summarizes identity, address and purchase total.
type HTMLMap struct{}

func (HTMLMap) Name() string { return "Map" }

// Available reports whether the map template parsed. A broken template is
// a missing capability, not a run failure.
func (HTMLMap) Available() bool { return mapTemplateErr == nil }

func (HTMLMap) Export(profiles []profile.Profile, path string) error {
	if mapTemplateErr != nil {
		return fmt.Errorf("map template unavailable: %w", mapTemplateErr)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create map file: %w", err)
	}
	defer file.Close()

	data := struct {
		CenterLat float64
		CenterLon float64
		Zoom      int
		Profiles  []profile.Profile
	}{
		CenterLat: 51.1657,
		CenterLon: 10.4515,
		Zoom:      6,
		Profiles:  profiles,
	}
	if err := mapTemplate.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}

var mapTemplate, mapTemplateErr = template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Profile Map</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var cluster = L.markerClusterGroup();
{{range .Profiles}}
cluster.addLayer(L.marker([{{.Latitude}}, {{.Longitude}}]).bindPopup(
  '<b>{{.FirstName}} {{.LastName}}</b><br>' +
  '{{.Street}}<br>' +
  '{{.ZipCode}} {{.City}}<br>' +
  '<b>Purchase:</b> {{.Quantity}}x {{.PurchaseItem}}<br>' +
  '<b>Total:</b> €{{printf "%.2f" .Total}}'
));
{{end}}
map.addLayer(cluster);
</script>
</body>
</html>
`)
