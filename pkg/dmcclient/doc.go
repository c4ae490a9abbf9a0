// Package dmcclient is the entry point for constructing IICS API clients.
//
// New returns the unified dmc.Client that routes each operation to the API
// generation serving it. NewV1, NewV2 and NewV3 return a single version
// client when only one generation is needed. Every constructor validates the
// credentials, then logs in before returning; a missing username or password
// fails with *dmc.AuthenticationError without any network call, and a
// rejected login fails with *dmc.APIError.
//
// Quick start
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
//
//	  cli, err := dmcclient.New(ctx, &dmc.Config{
//	    Username: "user",
//	    Password: "pass",
//	    // LoginURL defaults to https://dm1-us.informaticacloud.com
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  agents, err := cli.ListSecureAgents(ctx)
//	  if err != nil { log.Fatal(err) }
//	  for _, agent := range agents {
//	    log.Println(agent.String("name"))
//	  }
//
//	  user, err := cli.GetUserByName(ctx, "alice")
//	  if dmc.IsNotFound(err) {
//	    log.Println("no such user")
//	  }
//	  _ = user
//	}
//
// Login URL normalization
//
// LoginURL and V1ServerURL are normalized by trimming a trailing slash and
// adding "https://" when no scheme is present. The caller's Config is not
// modified.
package dmcclient
