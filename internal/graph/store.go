package graph

import (
	"context"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
	"github.com/yungbote/graphask-backend/internal/platform/neo4jdb"
)

// Store is the read-path query surface over the knowledge graph.
type Store struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewStore(client *neo4jdb.Client, log *logger.Logger) *Store {
	return &Store{client: client, log: log.With("component", "GraphStore")}
}

func (s *Store) Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	rows, err := s.client.Read(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	s.log.Debug("graph query executed", "rows", len(rows))
	return rows, nil
}
