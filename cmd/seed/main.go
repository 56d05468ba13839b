// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"mindscape/internal/config"
	"mindscape/internal/database"
	"mindscape/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 60, "Number of posts to create")
	numDebates := flag.Int("debates", 4, "Number of weekly debates to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed; 0 uses the current time")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumDebates:  *numDebates,
		ShouldClean: *shouldClean,
		RandSeed:    *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
