package models

import (
	"encoding/json"
	"testing"

	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "eight digits", in: "12345678"},
		{name: "short", in: "1"},
		{name: "empty", in: "", wantErr: true},
		{name: "nine digits", in: "123456789", wantErr: true},
		{name: "letters", in: "1234abcd", wantErr: true},
		{name: "spaces", in: "1234 567", wantErr: true},
		{name: "sign", in: "-1234567", wantErr: true},
		{name: "non-ascii digits", in: "١٢٣", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSanitizeIdentifierInput(t *testing.T) {
	assert.Equal(t, "12345678", SanitizeIdentifierInput("123456789"))
	assert.Equal(t, "1234", SanitizeIdentifierInput("12.34"))
	assert.Equal(t, "", SanitizeIdentifierInput("abc"))
	assert.Equal(t, "30111222", SanitizeIdentifierInput(" 30.111.222 "))
}

func TestCredentials_Validate(t *testing.T) {
	require.NoError(t, Credentials{Identifier: "30111222", Secret: []byte("x")}.Validate())
	require.ErrorIs(t, Credentials{Identifier: "30111222"}.Validate(), common.ErrValidation)
	require.ErrorIs(t, Credentials{Identifier: "x", Secret: []byte("x")}.Validate(), common.ErrValidation)
}

func TestLoginForm_ToggleTwiceRestoresObscured(t *testing.T) {
	var f LoginForm
	require.True(t, f.PasswordObscured())

	f.TogglePasswordVisibility()
	require.False(t, f.PasswordObscured())

	f.TogglePasswordVisibility()
	require.True(t, f.PasswordObscured())
}

func TestIdentity_SignedIn(t *testing.T) {
	var nilID *Identity
	assert.False(t, nilID.SignedIn())
	assert.False(t, (&Identity{Token: "t"}).SignedIn())
	assert.True(t, (&Identity{UID: "u1"}).SignedIn())
}

func TestUserRecord_JSONUsesDirectoryColumns(t *testing.T) {
	rec := UserRecord{Email: "a@b.c", Identifier: "30111222", Role: "affiliate", Account: "A-1", AvatarURL: "avatars/1.png"}
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c","dni":"30111222","role":"affiliate","account":"A-1","avatar_url":"avatars/1.png"}`, string(b))
}
