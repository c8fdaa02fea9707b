package graph

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
	"github.com/yungbote/graphask-backend/internal/platform/neo4jdb"
)

// SchemaProvider renders the graph's node labels, relationship types and
// property keys into the text description used to ground Cypher generation.
// The rendering is cached for a TTL; concurrent refreshes are collapsed.
type SchemaProvider struct {
	client *neo4jdb.Client
	log    *logger.Logger
	ttl    time.Duration

	mu        sync.RWMutex
	cached    string
	fetchedAt time.Time

	group singleflight.Group
}

func NewSchemaProvider(client *neo4jdb.Client, log *logger.Logger, ttl time.Duration) *SchemaProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SchemaProvider{
		client: client,
		log:    log.With("component", "SchemaProvider"),
		ttl:    ttl,
	}
}

func (p *SchemaProvider) Schema(ctx context.Context) (string, error) {
	p.mu.RLock()
	if p.cached != "" && time.Since(p.fetchedAt) < p.ttl {
		cached := p.cached
		p.mu.RUnlock()
		return cached, nil
	}
	p.mu.RUnlock()

	v, err, _ := p.group.Do("schema", func() (any, error) {
		rendered, err := p.fetch(ctx)
		if err != nil {
			return "", err
		}
		p.mu.Lock()
		p.cached = rendered
		p.fetchedAt = time.Now()
		p.mu.Unlock()
		return rendered, nil
	})
	if err != nil {
		// Serve a stale rendering over failing the whole request.
		p.mu.RLock()
		stale := p.cached
		p.mu.RUnlock()
		if stale != "" {
			p.log.Warn("schema refresh failed, serving stale", "error", err)
			return stale, nil
		}
		return "", err
	}
	return v.(string), nil
}

func (p *SchemaProvider) fetch(ctx context.Context) (string, error) {
	labels, err := p.column(ctx, "CALL db.labels() YIELD label RETURN label", "label")
	if err != nil {
		return "", fmt.Errorf("graph schema: labels: %w", err)
	}
	relTypes, err := p.column(ctx, "CALL db.relationshipTypes() YIELD relationshipType RETURN relationshipType", "relationshipType")
	if err != nil {
		return "", fmt.Errorf("graph schema: relationship types: %w", err)
	}
	propKeys, err := p.column(ctx, "CALL db.propertyKeys() YIELD propertyKey RETURN propertyKey", "propertyKey")
	if err != nil {
		return "", fmt.Errorf("graph schema: property keys: %w", err)
	}

	sort.Strings(labels)
	sort.Strings(relTypes)
	sort.Strings(propKeys)

	var b strings.Builder
	b.WriteString("Node labels: ")
	b.WriteString(strings.Join(labels, ", "))
	b.WriteString("\nRelationship types: ")
	b.WriteString(strings.Join(relTypes, ", "))
	b.WriteString("\nProperty keys: ")
	b.WriteString(strings.Join(propKeys, ", "))
	return b.String(), nil
}

func (p *SchemaProvider) column(ctx context.Context, cypher, key string) ([]string, error) {
	rows, err := p.client.Read(ctx, cypher, nil)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if v, ok := row[key].(string); ok && v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}
