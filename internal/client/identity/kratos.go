package identity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/common"
	ory "github.com/ory/client-go"
)

// KratosProvider signs in through an Ory Kratos native (API) login flow.
type KratosProvider struct {
	client *ory.APIClient
}

// NewKratosProvider targets the Kratos public API at publicURL.
func NewKratosProvider(publicURL string, httpClient *http.Client) *KratosProvider {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: publicURL}}
	if httpClient != nil {
		conf.HTTPClient = httpClient
	}
	return &KratosProvider{client: ory.NewAPIClient(conf)}
}

func (p *KratosProvider) SignIn(ctx context.Context, email string, secret []byte) (*models.Identity, error) {
	flow, resp, err := p.client.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: create login flow: %w", common.ErrUnavailable, describe(resp, err))
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&ory.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   string(secret),
	})

	result, resp, err := p.client.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.GetId()).
		UpdateLoginFlowBody(body).
		Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("%w: login flow rejected", common.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%w: submit login flow: %w", common.ErrUnavailable, describe(resp, err))
	}

	ident := result.Session.GetIdentity()
	out := &models.Identity{
		UID:   ident.GetId(),
		Email: email,
		Token: result.GetSessionToken(),
	}
	if traits, ok := ident.GetTraits().(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok && e != "" {
			out.Email = e
		}
	}
	return out, nil
}

func describe(resp *http.Response, err error) error {
	if resp == nil {
		return err
	}
	return fmt.Errorf("%s: %w", resp.Status, err)
}
