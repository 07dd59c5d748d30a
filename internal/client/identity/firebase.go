package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/common"
)

// DefaultFirebaseEndpoint is the Identity Toolkit REST base URL.
const DefaultFirebaseEndpoint = "https://identitytoolkit.googleapis.com"

// rejectionCodes are Identity Toolkit error messages meaning "wrong user or
// password" rather than a service problem.
var rejectionCodes = []string{
	"EMAIL_NOT_FOUND",
	"INVALID_PASSWORD",
	"INVALID_LOGIN_CREDENTIALS",
	"INVALID_EMAIL",
	"USER_DISABLED",
}

// FirebaseProvider signs in with Firebase Authentication's email/password
// REST endpoint.
type FirebaseProvider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewFirebaseProvider(endpoint, apiKey string, httpClient *http.Client) *FirebaseProvider {
	if endpoint == "" {
		endpoint = DefaultFirebaseEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FirebaseProvider{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type firebaseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email string, secret []byte) (*models.Identity, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: string(secret), ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	u := p.endpoint + "/v1/accounts:signInWithPassword?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", common.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapFirebaseError(resp.StatusCode, raw)
	}

	var out signInResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode sign-in response: %w", common.ErrUnavailable, err)
	}

	uid := out.LocalID
	if uid == "" {
		uid = uidFromIDToken(out.IDToken)
	}

	return &models.Identity{UID: uid, Email: out.Email, Token: out.IDToken}, nil
}

func mapFirebaseError(status int, raw []byte) error {
	var fe firebaseError
	_ = json.Unmarshal(raw, &fe)
	msg := fe.Error.Message

	for _, code := range rejectionCodes {
		if strings.HasPrefix(msg, code) {
			return fmt.Errorf("%w: %s", common.ErrInvalidCredentials, msg)
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("%w: firebase sign-in failed (%d): %s", common.ErrUnavailable, status, msg)
}

// uidFromIDToken reads the user id claim of a Firebase ID token. The token is
// not verified here; it came straight from the provider over TLS.
func uidFromIDToken(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		return uid
	}
	sub, _ := claims.GetSubject()
	return sub
}
