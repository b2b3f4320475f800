package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// CatalogIndex serves catalog listings from an Elasticsearch index. Pages are
// walked with search_after on the keyword cursor_key.
type CatalogIndex struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewCatalogIndex(ctx context.Context, config ClientConfig) (*CatalogIndex, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	idx := &CatalogIndex{
		client:    client,
		indexName: config.IndexName,
	}
	if err := idx.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return idx, nil
}

func (c *CatalogIndex) EnsureIndex(ctx context.Context) error {
	exists, err := c.client.Indices.Exists(c.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", c.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"cursor_key":       types.NewKeywordProperty(),
			"dataset":          types.NewKeywordProperty(),
			"office":           types.NewKeywordProperty(),
			"name":             types.NewKeywordProperty(),
			"bounding_office":  types.NewKeywordProperty(),
			"kind":             types.NewKeywordProperty(),
			"time_zone":        types.NewKeywordProperty(),
			"units":            types.NewKeywordProperty(),
			"interval":         types.NewKeywordProperty(),
			"interval_offset":  types.NewLongProperty(),
			"active":           types.NewBooleanProperty(),
			"group_categories": types.NewKeywordProperty(),
			"group_names":      types.NewKeywordProperty(),
			"earliest_time":    types.NewKeywordProperty(),
			"latest_time":      types.NewKeywordProperty(),
		},
	}

	res, err := c.client.Indices.Create(c.indexName).Mappings(&mappings).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", c.indexName)
	return nil
}

func (c *CatalogIndex) FetchCatalog(ctx context.Context, ds query.Dataset, f query.Catalog, afterKey string, limit int) ([]dto.CatalogEntry, error) {
	q, err := catalogQuery(ds, f)
	if err != nil {
		return nil, err
	}

	asc := sortorder.Asc
	req := c.client.Search().
		Index(c.indexName).
		Query(q).
		Size(limit).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"cursor_key": {Order: &asc},
			},
		})
	if afterKey != "" {
		req = req.SearchAfter(types.FieldValue(afterKey))
	}

	res, err := req.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch catalog query failed", "error", err, "dataset", ds)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	entries := make([]dto.CatalogEntry, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc CatalogDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		entries = append(entries, doc.toEntry(f.IncludeExtents))
	}
	return entries, nil
}

func (c *CatalogIndex) CountCatalog(ctx context.Context, ds query.Dataset, f query.Catalog) (int, error) {
	q, err := catalogQuery(ds, f)
	if err != nil {
		return 0, err
	}

	res, err := c.client.Count().Index(c.indexName).Query(q).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalog entries: %w", err)
	}
	return int(res.Count), nil
}

// Index bulk-loads entries, replacing documents with the same dataset and key.
func (c *CatalogIndex) Index(ctx context.Context, entries []dto.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         c.indexName,
		Client:        c.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64
	for _, e := range entries {
		body, err := json.Marshal(toDocument(e))
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: documentID(e),
			Body:       bytes.NewReader(body),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", documentID(e))
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	slog.Info("Bulk indexing completed",
		"indexed", stats.NumIndexed,
		"failed", failed.Load(),
		"total", len(entries),
		"index", c.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d catalog entries", n, len(entries))
	}
	return nil
}

func (c *CatalogIndex) Name() string {
	return "elasticsearch"
}

func (c *CatalogIndex) Healthy(ctx context.Context) bool {
	ok, err := c.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

func catalogQuery(ds query.Dataset, f query.Catalog) (*types.Query, error) {
	categoryLike, groupLike := f.LocCategoryLike, f.LocGroupLike
	if ds == query.DatasetTimeSeries {
		categoryLike, groupLike = f.TsCategoryLike, f.TsGroupLike
	}

	filters := []types.Query{
		{Term: map[string]types.TermQuery{"dataset": {Value: string(ds)}}},
	}
	if f.Office != "" {
		filters = append(filters, types.Query{Term: map[string]types.TermQuery{
			"office": {Value: f.Office, CaseInsensitive: ptr(true)},
		}})
	}

	regexps := []struct {
		field, param, expr string
	}{
		{"name", "like", f.IDLike},
		{"bounding_office", "bounding-office-like", f.BoundingOfficeLike},
		{"group_categories", "category-like", categoryLike},
		{"group_names", "group-like", groupLike},
	}
	for _, r := range regexps {
		// Validates the expression the same way the other backends do.
		p, err := query.Compile(r.param, r.expr)
		if err != nil {
			return nil, err
		}
		if p.Regex() == "" {
			continue
		}
		filters = append(filters, types.Query{Regexp: map[string]types.RegexpQuery{
			r.field: {Value: luceneRegexp(p.Regex()), CaseInsensitive: ptr(true)},
		}})
	}

	if f.ExcludeEmpty && ds == query.DatasetTimeSeries {
		filters = append(filters, types.Query{Exists: &types.ExistsQuery{Field: "earliest_time"}})
	}

	return &types.Query{Bool: &types.BoolQuery{Filter: filters}}, nil
}

func ptr[T any](v T) *T {
	return &v
}
