// Package dmc provides types, interfaces, and helpers for working with the
// Informatica Intelligent Cloud Services (IICS) REST APIs.
//
// # Overview
//
// IICS exposes three API generations. The v1 and v2 APIs cover documents,
// organizations, runtime environments, secure agents and connections; the v3
// API covers security administration: roles, privileges, users, user groups,
// SAML mappings, schedules and trusted IP ranges. The dmc package defines the
// generic response values (Record and Records), the error taxonomy, the
// session value produced by a login, and one interface per API generation
// plus the unified Client interface. A concrete implementation is provided by
// the dmcclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/iics-tools/dmc/pkg/dmc"
//	  "github.com/iics-tools/dmc/pkg/dmcclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dmcclient.New(ctx, &dmc.Config{Username: "user", Password: "pass"})
//	  if err != nil { log.Fatal(err) }
//
//	  org, err := cli.GetOrgDetails(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = org
//	}
//
// # Sessions
//
// Every authenticated call performs a fresh login first, so the session token
// sent with a request is never stale. The most recent Session is available
// from each version client for inspection. Clients are not safe for
// concurrent use.
//
// # Errors
//
// AuthenticationError is returned at construction when a credential is
// missing, APIError for any non-2xx response or transport failure, and
// NotFoundError when a lookup by id or name matches nothing. IsNotFound,
// IsAPIError, IsAuthentication and IsStatus branch on them.
package dmc
