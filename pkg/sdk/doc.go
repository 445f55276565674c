// Package kbdex provides a Go client for the kbdex knowledge-base search
// service.
//
//	client, _ := kbdex.New("http://localhost:8080",
//	    kbdex.WithAPIKey("secret"),
//	)
//	added, _ := client.Upload(ctx, "acme", []kbdex.Document{
//	    {Title: "Refund Policy", URL: "/refunds", Content: "..."},
//	})
//	results, _ := client.Search(ctx, "acme", "how do refunds work")
//
// Errors returned by the service map back to the sentinel errors exported by
// this package; check them with errors.Is.
package kbdex
