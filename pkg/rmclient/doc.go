// Package rmclient provides the primary entry point for constructing a
// Rick and Morty API client that implements the rmapi.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the rmapi package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/rmcli/pkg/rmapi"
//	  "github.com/fivetwenty-io/rmcli/pkg/rmclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Zero config talks to the public API.
//	  cli, err := rmclient.New(&rmapi.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  humans, err := cli.Characters().ListAll(ctx,
//	    rmapi.NewQueryParams().WithFilter("species", "Human"))
//	  if err != nil { log.Fatal(err) }
//	  _ = humans
//	}
//
// Retries are off by default. Set Config.RetryMax to retry 5xx responses,
// 429s and connection errors with exponential backoff.
package rmclient
