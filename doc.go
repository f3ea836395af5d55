// Package graph provides a Go client for a Graph-API style social graph
// service and its legacy FQL endpoint.
//
// # Overview
//
// Every operation maps an object id, a connection name and an optional
// reading.Reading to a URL, an HTTP verb and a decoding step. Lists come back
// as a Page whose cursors can be followed with FetchNext and FetchPrevious, or
// walked item by item with an Iterator.
//
// # Quick Start
//
//	client, err := graph.NewClient(&graph.Config{
//		AccessToken: os.Getenv("GRAPH_ACCESS_TOKEN"),
//		UserAgent:   "myapp/1.0",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	me, err := client.GetMe(ctx, reading.New().Fields("id", "name"))
//
// An empty object id means "me" wherever an id is optional.
//
// # Credentials
//
// A Config carries either a ready access token, app credentials (AppID and
// AppSecret, exchanged for an app token on first use) or a custom
// TokenProvider. Without any of them only the Search methods work; every
// other method fails with pkgerrs.KindAuthorizationRequired before making a
// request.
//
// # Reading
//
// reading.Reading selects fields and narrows lists:
//
//	r := reading.New().
//		Fields("id", "message", "comments.limit(5){from,message}").
//		Limit(25).
//		Since(time.Now().Add(-24 * time.Hour))
//	feed, err := client.GetFeed(ctx, "", r)
//
// # Pagination
//
//	page, err := client.GetFriends(ctx, "", nil)
//	for page != nil && err == nil {
//		for _, f := range page.Data {
//			fmt.Println(f.Name)
//		}
//		page, err = graph.FetchNext(ctx, client, page)
//	}
//
// FetchNext returns (nil, nil) once there is no next cursor.
//
// # Error Handling
//
// Failures are *pkgerrs.Error values whose Kind tells them apart:
//
//	_, err := client.GetPost(ctx, id, nil)
//	switch {
//	case errors.Is(err, pkgerrs.ErrAuthorizationRequired):
//		// no credentials configured
//	case errors.Is(err, pkgerrs.ErrAPI):
//		var apiErr *pkgerrs.APIError
//		if errors.As(err, &apiErr) {
//			log.Printf("API error %d: %s", apiErr.Code, apiErr.Message)
//		}
//	}
//
// # Rate Limiting
//
// Requests are throttled client-side (200 per minute with a burst of 20 by
// default, see RateLimitConfig). Retry-After and X-App-Usage response headers
// delay subsequent requests. Nothing is ever retried.
//
// # Concurrency
//
// A Client is safe for concurrent use by multiple goroutines.
package graph
