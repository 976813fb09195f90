// Package rmapi provides types, interfaces, and helpers for working with the
// Rick and Morty REST API.
//
// # Overview
//
// The API exposes three read-only collections: characters, locations and
// episodes. Entities are returned as loosely-typed JSON objects which this
// package models as Record, a schema-light mapping that keeps the server's
// field order and offers optional accessors (ID, Name, OriginName, AirDate,
// ...) for the handful of fields the client consults.
//
// A concrete client is provided by the rmclient package:
//
//	cli, err := rmclient.New(&rmapi.Config{})
//	if err != nil { log.Fatal(err) }
//
//	params := rmapi.NewQueryParams().WithFilter("status", "alive")
//	characters, err := cli.Characters().ListAll(ctx, params)
//
// # Queries and pagination
//
// QueryParams is an ordered mapping of filter fields; empty values are
// omitted from the query string. ListAll follows the info.next link of each
// page until it is null and concatenates the results in page order.
//
// # Errors
//
// Failures are reported as *RemoteError (the API answered with an error
// payload), *NetworkError (the API could not be reached) or *FormatError (a
// date or episode code did not match its fixed format). IsNotFound, IsRemote,
// IsNetwork and IsFormat branch on them.
package rmapi
