package graph

import (
	"context"
	"fmt"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
	"github.com/yungbote/graphask-backend/internal/platform/neo4jdb"
)

// Seed loads the sample personal-profile dataset used for local development
// and demos. When wipe is true the graph is emptied first.
func Seed(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, wipe bool) error {
	if wipe {
		if err := client.Write(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
			return fmt.Errorf("graph seed: wipe: %w", err)
		}
		log.Info("graph wiped before seeding")
	}

	constraints := []string{
		`CREATE CONSTRAINT person_name_unique IF NOT EXISTS FOR (p:Person) REQUIRE p.name IS UNIQUE`,
		`CREATE CONSTRAINT interest_name_unique IF NOT EXISTS FOR (i:Interest) REQUIRE i.name IS UNIQUE`,
		`CREATE CONSTRAINT occupation_name_unique IF NOT EXISTS FOR (o:Occupation) REQUIRE o.name IS UNIQUE`,
	}
	for _, stmt := range constraints {
		if err := client.Write(ctx, stmt, nil); err != nil {
			log.Warn("graph constraint init failed (continuing)", "error", err)
		}
	}

	if err := client.Write(ctx, seedCypher, nil); err != nil {
		return fmt.Errorf("graph seed: %w", err)
	}
	log.Info("graph seeded")
	return nil
}

const seedCypher = `
CREATE (nakao:Person {
    name: 'Nakao',
    age: 21,
    university_year: 3,
    mbti: 'ENTP',
    field: 'humanities',
    major: 'Business Administration'
})

CREATE (freedom:Value {name: 'freedom'})

CREATE (philosophy:Interest {name: 'philosophy'})
CREATE (soccer:Interest {name: 'soccer'})
CREATE (exercise:Interest {name: 'exercise'})

CREATE (mbti:PersonalityType {name: 'ENTP'})

CREATE (entrepreneur:Occupation {name: 'entrepreneur'})
CREATE (ceo:Occupation {name: 'company executive'})

CREATE (dream:Goal {name: 'changing the world'})

CREATE (aiSns:Field {name: 'personal AI x social media'})

CREATE (affiliate:Experience {name: 'affiliate marketing', started: 'high school'})
CREATE (snsOps:Experience {name: 'social media management', started: 'university'})
CREATE (eventOps:Experience {name: 'event management', started: 'university'})
CREATE (soccerPast:Experience {name: 'youth soccer', started: 'elementary school', ended: 'high school'})

CREATE (nakao)-[:VALUES]->(freedom)

CREATE (nakao)-[:LIKES]->(philosophy)
CREATE (nakao)-[:LIKES]->(soccer)
CREATE (nakao)-[:LIKES]->(exercise)

CREATE (nakao)-[:HAS_PERSONALITY]->(mbti)

CREATE (nakao)-[:PURSUING]->(dream)
CREATE (dream)-[:RELATED_TO]->(aiSns)

CREATE (nakao)-[:HAS_OCCUPATION]->(entrepreneur)
CREATE (nakao)-[:HAS_OCCUPATION]->(ceo)

CREATE (nakao)-[:HAS_EXPERIENCE]->(affiliate)
CREATE (nakao)-[:HAS_EXPERIENCE]->(snsOps)
CREATE (nakao)-[:HAS_EXPERIENCE]->(eventOps)
CREATE (nakao)-[:HAS_EXPERIENCE]->(soccerPast)
`

// Check runs the connectivity smoke test and returns the round-tripped
// message from the server.
func Check(ctx context.Context, client *neo4jdb.Client) (string, error) {
	rows, err := client.Read(ctx, "RETURN 'Connection Successful' AS message", nil)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("graph check: no rows returned")
	}
	msg, _ := rows[0]["message"].(string)
	return msg, nil
}
