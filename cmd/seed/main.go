package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/graphask-backend/internal/graph"
	"github.com/yungbote/graphask-backend/internal/platform/logger"
	"github.com/yungbote/graphask-backend/internal/platform/neo4jdb"
)

func main() {
	wipe := flag.Bool("wipe", false, "delete all nodes before seeding")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		log.Fatal("Neo4j init failed", "error", err)
	}
	ctx := context.Background()
	defer client.Close(ctx)

	if err := graph.Seed(ctx, client, log, *wipe); err != nil {
		log.Fatal("Seeding failed", "error", err)
	}
	log.Info("Seeding complete")
}
