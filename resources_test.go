package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestResourceRoutes(t *testing.T) {
	ctx := context.Background()
	f := false

	tests := []struct {
		name   string
		call   func(c *Client) error
		method string
		path   string
	}{
		{"receiving list", func(c *Client) error { _, err := c.Receiving.List(ctx, nil); return err }, "GET", "/emails/receiving"},
		{"receiving get", func(c *Client) error { _, err := c.Receiving.Get(ctx, "r_1"); return err }, "GET", "/emails/receiving/r_1"},
		{"receiving attachments", func(c *Client) error { _, err := c.Receiving.ListAttachments(ctx, "r_1", nil); return err }, "GET", "/emails/receiving/r_1/attachments"},
		{"receiving attachment", func(c *Client) error { _, err := c.Receiving.GetAttachment(ctx, "r_1", "att_1"); return err }, "GET", "/emails/receiving/r_1/attachments/att_1"},

		{"domain create", func(c *Client) error {
			_, err := c.Domains.Create(ctx, NewDomain("acme.dev").WithRegion(RegionEUWest1))
			return err
		}, "POST", "/domains"},
		{"domain get", func(c *Client) error { _, err := c.Domains.Get(ctx, "d_1"); return err }, "GET", "/domains/d_1"},
		{"domain list", func(c *Client) error { _, err := c.Domains.List(ctx, nil); return err }, "GET", "/domains"},
		{"domain update", func(c *Client) error {
			_, err := c.Domains.Update(ctx, "d_1", &UpdateDomainRequest{OpenTracking: &f})
			return err
		}, "PATCH", "/domains/d_1"},
		{"domain delete", func(c *Client) error { _, err := c.Domains.Delete(ctx, "d_1"); return err }, "DELETE", "/domains/d_1"},
		{"domain verify", func(c *Client) error { _, err := c.Domains.Verify(ctx, "d_1"); return err }, "POST", "/domains/d_1/verify"},

		{"audience create", func(c *Client) error {
			_, err := c.Audiences.Create(ctx, &CreateAudienceRequest{Name: "news"})
			return err
		}, "POST", "/audiences"},
		{"audience get", func(c *Client) error { _, err := c.Audiences.Get(ctx, "aud_1"); return err }, "GET", "/audiences/aud_1"},
		{"audience list", func(c *Client) error { _, err := c.Audiences.List(ctx, nil); return err }, "GET", "/audiences"},
		{"audience delete", func(c *Client) error { _, err := c.Audiences.Delete(ctx, "aud_1"); return err }, "DELETE", "/audiences/aud_1"},

		{"contact create", func(c *Client) error {
			_, err := c.Contacts.Create(ctx, "aud_1", NewContact("b@example.com").WithName("B", "C"))
			return err
		}, "POST", "/audiences/aud_1/contacts"},
		{"contact get by id", func(c *Client) error { _, err := c.Contacts.Get(ctx, "aud_1", ContactByID("c_1")); return err }, "GET", "/audiences/aud_1/contacts/c_1"},
		{"contact get by email", func(c *Client) error {
			_, err := c.Contacts.Get(ctx, "aud_1", ContactByEmail("b@example.com"))
			return err
		}, "GET", "/audiences/aud_1/contacts/b@example.com"},
		{"contact list", func(c *Client) error { _, err := c.Contacts.List(ctx, "aud_1", nil); return err }, "GET", "/audiences/aud_1/contacts"},
		{"contact update", func(c *Client) error {
			_, err := c.Contacts.Update(ctx, "aud_1", ContactByID("c_1"), &UpdateContactRequest{Unsubscribed: &f})
			return err
		}, "PATCH", "/audiences/aud_1/contacts/c_1"},
		{"contact delete", func(c *Client) error { _, err := c.Contacts.Delete(ctx, "aud_1", ContactByID("c_1")); return err }, "DELETE", "/audiences/aud_1/contacts/c_1"},

		{"segment create", func(c *Client) error {
			_, err := c.Segments.Create(ctx, &CreateSegmentRequest{Name: "vip"})
			return err
		}, "POST", "/segments"},
		{"segment get", func(c *Client) error { _, err := c.Segments.Get(ctx, "s_1"); return err }, "GET", "/segments/s_1"},
		{"segment list", func(c *Client) error { _, err := c.Segments.List(ctx, nil); return err }, "GET", "/segments"},
		{"segment delete", func(c *Client) error { _, err := c.Segments.Delete(ctx, "s_1"); return err }, "DELETE", "/segments/s_1"},
		{"segment add contact", func(c *Client) error { _, err := c.Segments.AddContact(ctx, ContactByID("c_1"), "s_1"); return err }, "POST", "/contacts/c_1/segments/s_1"},
		{"segment remove contact", func(c *Client) error { _, err := c.Segments.RemoveContact(ctx, ContactByID("c_1"), "s_1"); return err }, "DELETE", "/contacts/c_1/segments/s_1"},

		{"broadcast create", func(c *Client) error {
			_, err := c.Broadcasts.Create(ctx, NewBroadcast("s_1", "a@acme.dev", "News").WithHTML("<p>hi</p>"))
			return err
		}, "POST", "/broadcasts"},
		{"broadcast get", func(c *Client) error { _, err := c.Broadcasts.Get(ctx, "b_1"); return err }, "GET", "/broadcasts/b_1"},
		{"broadcast list", func(c *Client) error { _, err := c.Broadcasts.List(ctx, nil); return err }, "GET", "/broadcasts"},
		{"broadcast update", func(c *Client) error {
			_, err := c.Broadcasts.Update(ctx, "b_1", &UpdateBroadcastRequest{Subject: "New"})
			return err
		}, "PATCH", "/broadcasts/b_1"},
		{"broadcast delete", func(c *Client) error { _, err := c.Broadcasts.Delete(ctx, "b_1"); return err }, "DELETE", "/broadcasts/b_1"},
		{"broadcast send", func(c *Client) error { _, err := c.Broadcasts.Send(ctx, "b_1", nil); return err }, "POST", "/broadcasts/b_1/send"},

		{"template create", func(c *Client) error {
			_, err := c.Templates.Create(ctx, NewTemplate("welcome", "<p>{{{NAME}}}</p>").
				WithVariable(TemplateVariable{Key: "NAME", Type: VariableString, FallbackValue: "there"}))
			return err
		}, "POST", "/templates"},
		{"template get", func(c *Client) error { _, err := c.Templates.Get(ctx, "t_1"); return err }, "GET", "/templates/t_1"},
		{"template list", func(c *Client) error { _, err := c.Templates.List(ctx, nil); return err }, "GET", "/templates"},
		{"template update", func(c *Client) error {
			_, err := c.Templates.Update(ctx, "t_1", &UpdateTemplateRequest{Name: "w"})
			return err
		}, "PATCH", "/templates/t_1"},
		{"template delete", func(c *Client) error { _, err := c.Templates.Delete(ctx, "t_1"); return err }, "DELETE", "/templates/t_1"},
		{"template publish", func(c *Client) error { _, err := c.Templates.Publish(ctx, "t_1"); return err }, "POST", "/templates/t_1/publish"},
		{"template duplicate", func(c *Client) error { _, err := c.Templates.Duplicate(ctx, "t_1"); return err }, "POST", "/templates/t_1/duplicate"},

		{"topic create", func(c *Client) error {
			_, err := c.Topics.Create(ctx, &CreateTopicRequest{Name: "product", DefaultSubscription: SubscriptionOptIn})
			return err
		}, "POST", "/topics"},
		{"topic get", func(c *Client) error { _, err := c.Topics.Get(ctx, "top_1"); return err }, "GET", "/topics/top_1"},
		{"topic list", func(c *Client) error { _, err := c.Topics.List(ctx, nil); return err }, "GET", "/topics"},
		{"topic update", func(c *Client) error {
			_, err := c.Topics.Update(ctx, "top_1", &UpdateTopicRequest{Description: "d"})
			return err
		}, "PATCH", "/topics/top_1"},
		{"topic delete", func(c *Client) error { _, err := c.Topics.Delete(ctx, "top_1"); return err }, "DELETE", "/topics/top_1"},

		{"webhook create", func(c *Client) error {
			_, err := c.Webhooks.Create(ctx, &CreateWebhookRequest{Endpoint: "https://acme.dev/hook", Events: []EventType{EventEmailSent}})
			return err
		}, "POST", "/webhooks"},
		{"webhook get", func(c *Client) error { _, err := c.Webhooks.Get(ctx, "wh_1"); return err }, "GET", "/webhooks/wh_1"},
		{"webhook list", func(c *Client) error { _, err := c.Webhooks.List(ctx, nil); return err }, "GET", "/webhooks"},
		{"webhook update", func(c *Client) error {
			_, err := c.Webhooks.Update(ctx, "wh_1", &UpdateWebhookRequest{Status: WebhookDisabled})
			return err
		}, "PATCH", "/webhooks/wh_1"},
		{"webhook delete", func(c *Client) error { _, err := c.Webhooks.Delete(ctx, "wh_1"); return err }, "DELETE", "/webhooks/wh_1"},

		{"api key create", func(c *Client) error {
			_, err := c.APIKeys.Create(ctx, &CreateAPIKeyRequest{Name: "ci", Permission: PermissionFullAccess})
			return err
		}, "POST", "/api-keys"},
		{"api key list", func(c *Client) error { _, err := c.APIKeys.List(ctx, nil); return err }, "GET", "/api-keys"},
		{"api key delete", func(c *Client) error { _, err := c.APIKeys.Delete(ctx, "k_1"); return err }, "DELETE", "/api-keys/k_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, seen := newTestClient(t, http.StatusOK, `{"object":"x","id":"x_1","name":"n","email":"e","data":[]}`)
			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			req := seen.last(t)
			if req.Method != tt.method || req.Path != tt.path {
				t.Errorf("request = %s %s, want %s %s", req.Method, req.Path, tt.method, tt.path)
			}
		})
	}
}

func TestDeleteShapes(t *testing.T) {
	t.Run("typed id", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"object":"domain","id":"d_1","deleted":true}`)
		got, err := client.Domains.Delete(t.Context(), "d_1")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if got.ID != "d_1" || !got.Deleted || got.Object != "domain" {
			t.Errorf("Delete() = %+v", got)
		}
	})

	t.Run("contact", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"object":"contact","contact":"b@example.com","deleted":true}`)
		got, err := client.Contacts.Delete(t.Context(), "aud_1", ContactByEmail("b@example.com"))
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if got.Contact != "b@example.com" || !got.Deleted {
			t.Errorf("Delete() = %+v", got)
		}
	})

	t.Run("api key", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, ``)
		ok, err := client.APIKeys.Delete(t.Context(), "k_1")
		if err != nil || !ok {
			t.Errorf("Delete() = %v, %v, want true, nil", ok, err)
		}
	})
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	calls := []struct {
		name string
		call func(c *Client) error
	}{
		{"domain name", func(c *Client) error { _, err := c.Domains.Create(ctx, NewDomain("")); return err }},
		{"audience name", func(c *Client) error { _, err := c.Audiences.Create(ctx, &CreateAudienceRequest{}); return err }},
		{"contact email", func(c *Client) error { _, err := c.Contacts.Create(ctx, "aud_1", NewContact("")); return err }},
		{"segment name", func(c *Client) error { _, err := c.Segments.Create(ctx, nil); return err }},
		{"broadcast target", func(c *Client) error {
			_, err := c.Broadcasts.Create(ctx, NewBroadcast("", "a@acme.dev", "s"))
			return err
		}},
		{"template name", func(c *Client) error { _, err := c.Templates.Create(ctx, NewTemplate("", "<p/>")); return err }},
		{"topic subscription", func(c *Client) error {
			_, err := c.Topics.Create(ctx, &CreateTopicRequest{Name: "t", DefaultSubscription: "maybe"})
			return err
		}},
		{"webhook events", func(c *Client) error {
			_, err := c.Webhooks.Create(ctx, &CreateWebhookRequest{Endpoint: "https://acme.dev/hook"})
			return err
		}},
		{"api key domain", func(c *Client) error {
			_, err := c.APIKeys.Create(ctx, &CreateAPIKeyRequest{Name: "k", DomainID: "d_1"})
			return err
		}},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			client, seen := newTestClient(t, http.StatusOK, `{}`)
			err := tt.call(client)
			var iae *InvalidArgumentError
			if !errors.As(err, &iae) {
				t.Errorf("error = %v, want *InvalidArgumentError", err)
			}
			if seen.count() != 0 {
				t.Error("invalid request reached the server")
			}
		})
	}
}

func TestNullListsDecodeEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, b []byte)
	}{
		{"domain records", `{"id":"d_1","records":null}`, func(t *testing.T, b []byte) {
			var d Domain
			mustUnmarshal(t, b, &d)
			if d.Records == nil {
				t.Error("Records = nil")
			}
		}},
		{"broadcast reply_to", `{"id":"b_1","reply_to":null}`, func(t *testing.T, b []byte) {
			var v Broadcast
			mustUnmarshal(t, b, &v)
			if v.ReplyTo == nil {
				t.Error("ReplyTo = nil")
			}
		}},
		{"template lists", `{"id":"t_1","reply_to":null,"variables":null}`, func(t *testing.T, b []byte) {
			var v Template
			mustUnmarshal(t, b, &v)
			if v.ReplyTo == nil || v.Variables == nil {
				t.Error("nil list after null")
			}
		}},
		{"webhook events", `{"id":"wh_1","events":null}`, func(t *testing.T, b []byte) {
			var v Webhook
			mustUnmarshal(t, b, &v)
			if v.Events == nil {
				t.Error("Events = nil")
			}
		}},
		{"received email", `{"id":"r_1","to":null,"cc":null,"bcc":null,"reply_to":null,"attachments":null}`, func(t *testing.T, b []byte) {
			var v ReceivedEmail
			mustUnmarshal(t, b, &v)
			if v.To == nil || v.Cc == nil || v.Bcc == nil || v.ReplyTo == nil || v.Attachments == nil {
				t.Errorf("nil list after null: %+v", v)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, []byte(tt.input))
		})
	}
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
}

func TestCreatedAPIKey_StringHidesToken(t *testing.T) {
	k := CreatedAPIKey{ID: "k_1", Token: "re_secret"}
	if s := k.String(); s != "CreatedAPIKey{ID: k_1, Token: [REDACTED]}" {
		t.Errorf("String() = %q", s)
	}
}

func TestUnsafeIdentifiersNeverReachServer(t *testing.T) {
	ctx := context.Background()
	calls := []struct {
		name string
		call func(c *Client) error
	}{
		{"empty domain delete", func(c *Client) error { _, err := c.Domains.Delete(ctx, ""); return err }},
		{"dot-dot domain get", func(c *Client) error { _, err := c.Domains.Get(ctx, ".."); return err }},
		{"dot domain verify", func(c *Client) error { _, err := c.Domains.Verify(ctx, "."); return err }},
		{"dot-dot contact delete", func(c *Client) error {
			_, err := c.Contacts.Delete(ctx, "aud_1", ContactByEmail(".."))
			return err
		}},
		{"empty contact delete", func(c *Client) error { _, err := c.Contacts.Delete(ctx, "aud_1", ContactByID("")); return err }},
		{"empty audience contacts", func(c *Client) error { _, err := c.Contacts.List(ctx, "", nil); return err }},
		{"dot-dot segment remove", func(c *Client) error {
			_, err := c.Segments.RemoveContact(ctx, ContactByID("c_1"), "..")
			return err
		}},
		{"empty api key delete", func(c *Client) error { _, err := c.APIKeys.Delete(ctx, ""); return err }},
		{"dot-dot receiving attachment", func(c *Client) error {
			_, err := c.Receiving.GetAttachment(ctx, "r_1", "..")
			return err
		}},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			client, seen := newTestClient(t, http.StatusOK, `{}`)
			err := tt.call(client)
			var pathErr *InvalidPathError
			if !errors.As(err, &pathErr) {
				t.Errorf("error = %v, want *InvalidPathError", err)
			}
			if seen.count() != 0 {
				t.Errorf("request reached the server: %+v", seen.last(t))
			}
		})
	}
}

func TestUpdateRequiresRequest(t *testing.T) {
	ctx := context.Background()
	calls := []struct {
		name string
		call func(c *Client) error
	}{
		{"domain", func(c *Client) error { _, err := c.Domains.Update(ctx, "d_1", nil); return err }},
		{"contact", func(c *Client) error { _, err := c.Contacts.Update(ctx, "aud_1", ContactByID("c_1"), nil); return err }},
		{"broadcast", func(c *Client) error { _, err := c.Broadcasts.Update(ctx, "b_1", nil); return err }},
		{"template", func(c *Client) error { _, err := c.Templates.Update(ctx, "t_1", nil); return err }},
		{"topic", func(c *Client) error { _, err := c.Topics.Update(ctx, "top_1", nil); return err }},
		{"webhook", func(c *Client) error { _, err := c.Webhooks.Update(ctx, "wh_1", nil); return err }},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			client, seen := newTestClient(t, http.StatusOK, `{}`)
			err := tt.call(client)
			var iae *InvalidArgumentError
			if !errors.As(err, &iae) {
				t.Errorf("error = %v, want *InvalidArgumentError", err)
			}
			if seen.count() != 0 {
				t.Error("nil request reached the server")
			}
		})
	}
}
