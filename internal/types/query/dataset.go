package query

import (
	"fmt"
	"strings"
)

// Dataset selects which catalog is listed.
type Dataset string

const (
	DatasetLocations  Dataset = "locations"
	DatasetTimeSeries Dataset = "timeseries"
)

var SupportedDatasets = map[Dataset]bool{
	DatasetLocations:  true,
	DatasetTimeSeries: true,
}

func ParseDataset(s string) (Dataset, error) {
	d := Dataset(strings.ToLower(s))
	if _, ok := SupportedDatasets[d]; !ok {
		return "", fmt.Errorf("unsupported dataset: %s (must be 'locations' or 'timeseries')", s)
	}
	return d, nil
}
