package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactsPage(contacts ...Contact) contactsResponse {
	var resp contactsResponse
	resp.Contacts = contacts
	resp.Meta.Total = len(contacts)
	return resp
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	base := []Option{WithBaseURL(srv.URL), WithMaxRetries(0)}
	return NewClient("test-token", "loc_123", append(base, opts...)...), srv
}

func TestClient_ListContacts_RequestShape(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		_ = json.NewEncoder(w).Encode(contactsPage())
	})

	_, err := client.ListContacts(context.Background(), 25, 50)
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/contacts/", gotReq.URL.Path)
	assert.Equal(t, "Bearer test-token", gotReq.Header.Get("Authorization"))
	assert.Equal(t, apiVersion, gotReq.Header.Get("Version"))

	query := gotReq.URL.Query()
	assert.Equal(t, "loc_123", query.Get("locationId"))
	assert.Equal(t, "25", query.Get("limit"))
	assert.Equal(t, "50", query.Get("skip"))
}

func TestClient_FindContactByEmail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(contactsPage(
			Contact{ID: "c_1", Email: "other@example.com"},
			Contact{ID: "c_2", Email: "Jane.Doe@Example.com", Tags: []string{"VIP"}},
		))
	})

	contact, err := client.FindContactByEmail(context.Background(), "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "c_2", contact.ID)
	assert.Equal(t, []string{"VIP"}, contact.Tags)
}

func TestClient_FindContactByEmail_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(contactsPage(
			Contact{ID: "c_1", Email: "other@example.com"},
		))
	})

	_, err := client.FindContactByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestClient_FindContactByEmail_EmptyEmail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty email")
	})

	_, err := client.FindContactByEmail(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestClient_FindContactByEmail_PaginatesToSecondPage(t *testing.T) {
	var skips []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		skip := r.URL.Query().Get("skip")
		skips = append(skips, skip)

		if skip == "0" {
			full := make([]Contact, contactScanPageSize)
			for i := range full {
				full[i] = Contact{ID: fmt.Sprintf("c_%d", i), Email: fmt.Sprintf("u%d@example.com", i)}
			}
			_ = json.NewEncoder(w).Encode(contactsPage(full...))
			return
		}
		_ = json.NewEncoder(w).Encode(contactsPage(
			Contact{ID: "c_target", Email: "target@example.com"},
		))
	})

	contact, err := client.FindContactByEmail(context.Background(), "target@example.com")
	require.NoError(t, err)
	assert.Equal(t, "c_target", contact.ID)
	assert.Equal(t, []string{"0", "100"}, skips)
}

func TestClient_AddTags(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody tagsRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := client.AddTags(context.Background(), "c_42", []string{"Stripe-Active", "Stripe-Loyal-3+"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/contacts/c_42/tags", gotPath)
	assert.Equal(t, []string{"Stripe-Active", "Stripe-Loyal-3+"}, gotBody.Tags)
}

func TestClient_RemoveTags(t *testing.T) {
	var gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.RemoveTags(context.Background(), "c_42", []string{"Promo-2026"}))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestClient_TagOpsSkipEmptyTagList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty tag list")
	})

	assert.NoError(t, client.AddTags(context.Background(), "c_42", nil))
	assert.NoError(t, client.RemoveTags(context.Background(), "c_42", nil))
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(contactsPage())
	}, WithMaxRetries(2))

	_, err := client.ListContacts(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, BreakerClosed, client.BreakerState())
}

func TestClient_ClientErrorIsPermanent(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}, WithMaxRetries(3))

	_, err := client.ListContacts(context.Background(), 1, 0)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "4xx responses must not be retried")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestClient_BreakerOpensAndRejects(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}, WithBreaker(NewCircuitBreaker(2, time.Minute)))

	_, err := client.ListContacts(context.Background(), 1, 0)
	require.Error(t, err)
	_, err = client.ListContacts(context.Background(), 1, 0)
	require.Error(t, err)
	assert.Equal(t, BreakerOpen, client.BreakerState())

	_, err = client.ListContacts(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, calls, "open breaker must short-circuit before the HTTP call")
}
