package authhandler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/auth"
	"hris/internal/transport/http/handlertest"
)

type fakeAuthenticator struct {
	err error
}

func (f fakeAuthenticator) Login(_ context.Context, email, password string) (auth.LoginResult, error) {
	if f.err != nil {
		return auth.LoginResult{}, f.err
	}
	if email != "admin@hris.local" || password != "ChangeMe123!" {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}
	return auth.LoginResult{Token: "token", Role: auth.RoleAdmin}, nil
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "valid", body: loginRequest{Email: "admin@hris.local", Password: "ChangeMe123!"}, wantCode: http.StatusOK},
		{name: "wrong password", body: loginRequest{Email: "admin@hris.local", Password: "nope"}, wantCode: http.StatusUnauthorized, wantErr: "invalid_credentials"},
		{name: "missing fields", body: loginRequest{}, wantCode: http.StatusBadRequest, wantErr: "validation_error"},
		{name: "malformed", body: "{", wantCode: http.StatusBadRequest, wantErr: "invalid_payload"},
		{name: "store failure", body: loginRequest{Email: "a@b.c", Password: "x"}, err: errors.New("db down"), wantCode: http.StatusInternalServerError, wantErr: "login_failed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(fakeAuthenticator{err: tc.err})
			rec := handlertest.Do(t, h, "", http.MethodPost, "/api/v1/auth/login", tc.body)
			require.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, handlertest.Decode(t, rec).Error.Code)
				return
			}
			var result auth.LoginResult
			handlertest.Data(t, rec, &result)
			assert.Equal(t, "token", result.Token)
			assert.Equal(t, auth.RoleAdmin, result.Role)
		})
	}
}

func TestMe(t *testing.T) {
	h := NewHandler(fakeAuthenticator{})

	rec := handlertest.Do(t, h, "", http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me currentUser
	handlertest.Data(t, rec, &me)
	assert.Equal(t, int64(1), me.UserID)
	assert.Equal(t, auth.RoleManager, me.Role)
}
