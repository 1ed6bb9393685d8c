package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Battle summaries expire on a TTL but their per-character index sets do not,
// so a quiet character can accumulate dangling index entries. The list path
// repairs these lazily; this script sweeps them all at once.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning battle history indexes for dangling entries...")

	iter := client.Scan(ctx, 0, "battle_history:character:*", 0).Iterator()

	// index key -> summary IDs whose records are gone
	dangling := make(map[string][]string)
	var indexCount, entryCount, danglingCount int

	for iter.Next(ctx) {
		indexKey := iter.Val()
		indexCount++

		ids, err := client.SMembers(ctx, indexKey).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", indexKey, err)
			continue
		}

		for _, id := range ids {
			entryCount++
			exists, err := client.Exists(ctx, "battle_history:"+id).Result()
			if err != nil {
				fmt.Printf("Error checking summary %s: %v\n", id, err)
				continue
			}
			if exists == 0 {
				dangling[indexKey] = append(dangling[indexKey], id)
				danglingCount++
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d indexes (%d entries), found %d dangling entries\n",
		indexCount, entryCount, danglingCount)

	if danglingCount == 0 {
		fmt.Println("Indexes are clean!")
		return
	}

	fmt.Println("\nDangling entries:")
	for indexKey, ids := range dangling {
		fmt.Printf("  - %s: %s\n", indexKey, strings.Join(ids, ", "))
	}

	fmt.Print("\nDo you want to REMOVE these index entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for indexKey, ids := range dangling {
		members := make([]interface{}, len(ids))
		for i, id := range ids {
			members[i] = id
		}
		if err := client.SRem(ctx, indexKey, members...).Err(); err != nil {
			fmt.Printf("Failed to repair %s: %v\n", indexKey, err)
		} else {
			fmt.Printf("Repaired %s (%d entries removed)\n", indexKey, len(ids))
		}
	}
	fmt.Println("\nRepair complete!")
}
