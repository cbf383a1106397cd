// Package resend provides a Go client for the Resend transactional email API.
//
// Every resource is a service on the [Client]: Emails, Batch, Receiving,
// Domains, Audiences, Contacts, Segments, Broadcasts, Templates, Topics,
// Webhooks and APIKeys. Calls are synchronous, take a context and are safe to
// make from any number of goroutines.
//
// Basic usage:
//
//	client, err := resend.New("re_123") // or "" to read RESEND_API_KEY
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	email := resend.NewEmail("Acme <onboarding@acme.dev>", []string{"user@example.com"}, "Hello").
//	    WithHTML("<p>It works</p>").
//	    WithTag("category", "welcome")
//
//	sent, err := client.Emails.Send(ctx, email)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("ID:", sent.ID)
//
// Rate-limited calls fail with *[RateLimitError]. Wrap a call in [Retry] to
// wait for the server's reset window and try again.
//
// Inbound webhook deliveries are decoded with [ParseEvent] after the caller
// has verified their signature.
package resend
