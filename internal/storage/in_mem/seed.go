package in_mem

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML fixture layout loaded into an InMemStorer.
type Seed struct {
	Clobs       []dto.Clob                           `yaml:"clobs"`
	Blobs       []dto.Blob                           `yaml:"blobs"`
	Pools       []dto.Pool                           `yaml:"pools"`
	Levels      []dto.LocationLevel                  `yaml:"levels"`
	Locations   []dto.Location                       `yaml:"locations"`
	Descriptors []dto.TimeSeriesIdentifierDescriptor `yaml:"descriptors"`
	Catalog     []dto.CatalogEntry                   `yaml:"catalog"`
	TimeSeries  []SeedSeries                         `yaml:"timeseries"`
}

type SeedSeries struct {
	OfficeID string       `yaml:"office-id"`
	Name     string       `yaml:"name"`
	Units    string       `yaml:"units"`
	Interval string       `yaml:"interval"`
	Values   []dto.Record `yaml:"values"`
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &seed, nil
}

func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// Load adds every seeded resource, replacing existing ones with the same key.
// Seeded locations also appear in the locations catalog.
func (s *InMemStorer) Load(seed *Seed) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, c := range seed.Clobs {
		s.clobs[c.Key()] = c
	}
	for _, b := range seed.Blobs {
		s.blobs[b.Key()] = b
	}
	for _, p := range seed.Pools {
		s.pools[p.Key()] = p
	}
	for _, l := range seed.Levels {
		s.levels[l.Key()] = l
	}
	for _, d := range seed.Descriptors {
		s.descriptors[d.Key()] = d
	}
	for _, l := range seed.Locations {
		s.putLocation(l)
	}
	for _, e := range seed.Catalog {
		s.putCatalog(e)
	}
	for _, ts := range seed.TimeSeries {
		s.putSeries(dto.TimeSeries{
			OfficeID: ts.OfficeID,
			Name:     ts.Name,
			Units:    ts.Units,
			Interval: ts.Interval,
		}, ts.Values)
	}

	slog.Info("Loaded seed into in-memory storage",
		"clobs", len(seed.Clobs),
		"pools", len(seed.Pools),
		"levels", len(seed.Levels),
		"locations", len(seed.Locations),
		"catalog", len(seed.Catalog),
		"timeseries", len(seed.TimeSeries))
}
