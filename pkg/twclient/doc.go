// Package twclient provides the primary entry point for constructing a
// teamwork.tf API client that implements the teamwork.Client interface.
//
// It layers configuration, HTTP transport and logging on top of the resource
// interfaces and types defined in the teamwork package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/teamwork/pkg/teamwork"
//	  "github.com/fivetwenty-io/teamwork/pkg/twclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key.
//	  cli, err := twclient.NewWithKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration.
//	  cli, err = twclient.New(&teamwork.Config{
//	    APIKey:      "your-api-key",
//	    HTTPTimeout: 10 * time.Second,
//	    Logger:      teamwork.NewZerologLogger(zerolog.New(os.Stderr)),
//	  })
//
//	  stats, err := cli.Maps().Stats(ctx, "pl_upward")
//	  if err != nil { log.Fatal(err) }
//	  if m, ok := stats.Get(); ok {
//	    log.Printf("%s: %d players on %d servers", m.Map, m.Players, m.Servers)
//	  }
//	}
//
// Notes
//
//   - New never performs network I/O; the first request is made by the first
//     method call.
//   - BaseURL gains "https://" when it has no scheme and always ends in "/".
//   - Keys issued at https://teamwork.tf/api are read from TEAMWORK_API_KEY by
//     NewFromEnv.
package twclient
