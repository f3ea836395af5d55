package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	graph "github.com/jamesprial/go-graph-api-wrapper"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

func main() {
	accessToken := os.Getenv(graph.EnvAccessToken)
	if accessToken == "" {
		log.Fatal("GRAPH_ACCESS_TOKEN environment variable is required")
	}

	// Route structured logs to stdout; adjust the level as needed.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client, err := graph.NewClient(&graph.Config{
		AccessToken: accessToken,
		UserAgent:   "example-app/1.0",
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	me, err := client.GetMe(ctx, reading.New().Fields("id", "name"))
	if err != nil {
		log.Fatalf("Failed to get current user: %v", err)
	}
	fmt.Printf("Authenticated as %s (%s)\n", me.Name, me.ID)

	// Feed posts, with up to five comments and their replies embedded.
	r := reading.New().
		Fields("id", "message", "from", "comments.limit(5){id,message,from,comments{id,message,from}}").
		Limit(5)
	feed, err := client.GetFeed(ctx, "", r)
	if err != nil {
		log.Fatalf("Failed to get feed: %v", err)
	}

	fmt.Println("\nLatest posts:")
	for i, post := range feed.Data {
		fmt.Printf("%d. %.80s\n", i+1, post.Message)
	}

	fmt.Println("\n=== PAGINATION & TREE TRAVERSAL DEMOS ===")

	// 1. Follow next cursors by hand.
	fmt.Println("\n1. Paging through the feed:")
	page, total := feed, 0
	for n := 1; n <= 3 && page != nil; n++ {
		fmt.Printf("   Page %d: %d posts\n", n, len(page.Data))
		total += len(page.Data)
		if page, err = graph.FetchNext(ctx, client, page); err != nil {
			log.Printf("Failed to get page %d: %v", n+1, err)
			break
		}
	}
	fmt.Printf("   Total posts fetched: %d\n", total)

	// 2. Let an iterator do the same for friends.
	fmt.Println("\n2. Iterating over friends:")
	first, err := client.GetFriends(ctx, "", reading.New().Limit(25))
	if err != nil {
		log.Printf("Failed to get friends: %v", err)
	} else {
		friends, err := graph.NewIterator(ctx, client, first).Collect(100)
		if err != nil {
			log.Printf("Stopped after %d friends: %v", len(friends), err)
		}
		fmt.Printf("   %d friends\n", len(friends))

		// 3. Batch lookup of the first few.
		ids := make([]string, 0, 3)
		for _, f := range friends[:min(3, len(friends))] {
			ids = append(ids, f.ID)
		}
		if len(ids) > 0 {
			users, err := client.GetUsers(ctx, ids, reading.New().Fields("id", "name", "locale"))
			if err != nil {
				log.Printf("Batch lookup failed: %v", err)
			}
			fmt.Println("\n3. Batch lookup:")
			for _, u := range users {
				fmt.Printf("   - %s (%s)\n", u.Name, u.Locale)
			}
		}
	}

	// 4. Walk the embedded comment tree of the first post.
	for _, post := range feed.Data {
		if post.Comments == nil || len(post.Comments.Data) == 0 {
			continue
		}
		thread := graph.NewCommentThread(post.Comments.Data)
		fmt.Printf("\n4. Comments on %s: %d in total, %d levels deep\n", post.ID, thread.Count(), thread.GetDepth())
		thread.Walk(func(c *types.Comment) {
			author := "unknown"
			if c.From != nil {
				author = c.From.Name
			}
			fmt.Printf("   - %s: %.60s\n", author, c.Message)
		})
		break
	}
}
