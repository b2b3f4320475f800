package testing

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const esImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

// ESContainer is a single node Elasticsearch started for one test.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts Elasticsearch and terminates it when tb finishes.
func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	esContainer, err := elasticsearch.Run(ctx,
		esImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	endpoint, err := esContainer.PortEndpoint(ctx, "9200", "http")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch endpoint: %v", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   endpoint,
	}
}

func (c *ESContainer) Addresses() []string {
	return []string{c.Address}
}

// IndexName derives an index name for tb that is valid in Elasticsearch.
func IndexName(tb testing.TB) string {
	name := strings.ToLower(tb.Name())
	name = strings.NewReplacer("/", "-", " ", "-", "#", "-").Replace(name)
	return fmt.Sprintf("hydro-%s", name)
}
