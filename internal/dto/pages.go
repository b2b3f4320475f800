package dto

import "github.com/DjordjeVuckovic/hydro-api/pkg/pagination"

type Clobs struct {
	pagination.Meta
	Clobs []Clob `json:"clobs"`
}

func NewClobs(p *pagination.Page[Clob]) *Clobs {
	return &Clobs{Meta: p.Meta, Clobs: p.Items}
}

type Blobs struct {
	pagination.Meta
	Blobs []Blob `json:"blobs"`
}

func NewBlobs(p *pagination.Page[Blob]) *Blobs {
	return &Blobs{Meta: p.Meta, Blobs: p.Items}
}

type Pools struct {
	pagination.Meta
	Pools []Pool `json:"pools"`
}

func NewPools(p *pagination.Page[Pool]) *Pools {
	return &Pools{Meta: p.Meta, Pools: p.Items}
}

type LocationLevels struct {
	pagination.Meta
	Levels []LocationLevel `json:"levels"`
}

func NewLocationLevels(p *pagination.Page[LocationLevel]) *LocationLevels {
	return &LocationLevels{Meta: p.Meta, Levels: p.Items}
}

type TimeSeriesIdentifierDescriptors struct {
	pagination.Meta
	Descriptors []TimeSeriesIdentifierDescriptor `json:"descriptors"`
}

func NewTimeSeriesIdentifierDescriptors(p *pagination.Page[TimeSeriesIdentifierDescriptor]) *TimeSeriesIdentifierDescriptors {
	return &TimeSeriesIdentifierDescriptors{Meta: p.Meta, Descriptors: p.Items}
}

// Catalog is one page of a location or time series catalog.
type Catalog struct {
	pagination.Meta
	Entries []CatalogEntry `json:"entries"`
}

func NewCatalog(p *pagination.Page[CatalogEntry]) *Catalog {
	return &Catalog{Meta: p.Meta, Entries: p.Items}
}
