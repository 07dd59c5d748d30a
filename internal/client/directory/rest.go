package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/supabase-community/postgrest-go"
)

const userColumns = "email,dni,role,account,avatar_url"

// RESTDirectory queries the users table through PostgREST, the HTTP layer of
// Supabase. apiKey is sent both as the apikey header and as a bearer token.
type RESTDirectory struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTDirectory(baseURL, apiKey string, httpClient *http.Client) *RESTDirectory {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTDirectory{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// restRow tolerates numeric account columns.
type restRow struct {
	Email      string `json:"email"`
	Identifier any    `json:"dni"`
	Role       string `json:"role"`
	Account    any    `json:"account"`
	AvatarURL  string `json:"avatar_url"`
}

// ctxTransport attaches ctx to every request. postgrest-go builds its
// requests without a context.
type ctxTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t ctxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// client returns a PostgREST client bound to ctx.
func (d *RESTDirectory) client(ctx context.Context) (*postgrest.Client, error) {
	c := postgrest.NewClient(d.baseURL+"/rest/v1", "", nil)
	if c.ClientError != nil {
		return nil, c.ClientError
	}
	if d.apiKey != "" {
		c.SetApiKey(d.apiKey).SetAuthToken(d.apiKey)
	}

	base := d.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.Transport.Parent = ctxTransport{ctx: ctx, base: base}
	return c, nil
}

func (d *RESTDirectory) FindAffiliates(ctx context.Context, identifier string) ([]models.UserRecord, error) {
	c, err := d.client(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: directory url: %w", common.ErrUnavailable, err)
	}

	body, _, err := c.From("users").
		Select(userColumns, "", false).
		Eq("role", common.AffiliateRole).
		Eq("dni", identifier).
		Limit(lookupLimit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: directory lookup failed: %w", common.ErrUnavailable, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var rows []restRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode users: %w", common.ErrMalformedRecord, err)
	}

	records := make([]models.UserRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.UserRecord{
			Email:      r.Email,
			Identifier: stringify(r.Identifier),
			Role:       r.Role,
			Account:    stringify(r.Account),
			AvatarURL:  r.AvatarURL,
		})
	}
	return records, nil
}

func (d *RESTDirectory) Close() error {
	d.httpClient.CloseIdleConnections()
	return nil
}

func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
