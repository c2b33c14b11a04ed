// Package teamwork provides types, interfaces and helpers for working with the
// teamwork.tf API.
//
// # Overview
//
// The teamwork package defines the result shapes (News, Server, Map, ...), the
// resource client interfaces (NewsClient, MapsClient, ...) and the generic
// request engine, Execute. A concrete client is built by the twclient package,
// which wires configuration, transport and logging.
//
//	cli, err := twclient.NewWithKey(os.Getenv("TEAMWORK_API_KEY"))
//	if err != nil { log.Fatal(err) }
//
//	modes, err := cli.Quickplay().GameModes(ctx)
//	if err != nil { log.Fatal(err) }
//	for _, mode := range modes.OrEmpty() {
//	  fmt.Println(mode.Title, mode.Players)
//	}
//
// # Absent results
//
// Every call returns an mo.Option. It is None when the service answered with a
// non-2xx status, when the request failed in transport, or when the body was
// empty. Only a body that cannot be read as the requested shape produces an
// error (see IsUnparseable); fields with unexpected types are skipped.
//
// # Endpoints without a method
//
// A Client is also a Requester, so any endpoint can be called directly:
//
//	stats, err := teamwork.Execute[teamwork.ProviderStats](ctx, cli, "community/provider/skial/stats")
//
// # Identifiers
//
// ResolveMapNames expands a loose map query ("cp_badlands", "Upward") into the
// matching catalog identifiers, and ResolveGameMode turns shorthand such as
// "pl" or "King of the Hill" into the token the API expects.
package teamwork
