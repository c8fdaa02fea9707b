package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/graphask-backend/internal/graph"
	"github.com/yungbote/graphask-backend/internal/platform/logger"
	"github.com/yungbote/graphask-backend/internal/platform/neo4jdb"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		log.Fatal("Neo4j connection failed", "error", err)
	}
	ctx := context.Background()
	defer client.Close(ctx)

	msg, err := graph.Check(ctx, client)
	if err != nil {
		log.Fatal("Connection check failed", "error", err)
	}
	log.Info("Neo4j connection successful", "message", msg)
}
