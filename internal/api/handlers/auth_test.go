package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_SignUp(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful sign up",
			request: map[string]string{
				"userName": "newuser",
				"fullName": "New User",
				"email":    "new@example.com",
				"password": "Password1!",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				assert.NotNil(t, testutil.CookieByName(resp, "access_token"))
				assert.NotNil(t, testutil.CookieByName(resp, "refresh_token"))

				var result testutil.AuthResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "newuser", result.User.Username)
				assert.Equal(t, string(domain.RoleUser), result.User.Role)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			},
		},
		{
			name: "missing password",
			request: map[string]string{
				"userName": "nopass",
				"fullName": "No Pass",
				"email":    "nopass@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password",
			request: map[string]string{
				"userName": "weakpass",
				"fullName": "Weak Pass",
				"email":    "weak@example.com",
				"password": "password",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"userName": "existinguser",
				"fullName": "Existing",
				"email":    "fresh@example.com",
				"password": "Password1!",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/sign-up"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithEmail("login@example.com").
		WithPassword("Correctpass1!").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "sign in with username",
			request: map[string]string{
				"userNameOrEmail": user.Username,
				"password":        rawPassword,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				assert.NotNil(t, testutil.CookieByName(resp, "access_token"))

				var result testutil.AuthResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, user.Username, result.User.Username)
				assert.NotEmpty(t, result.AccessToken)
			},
		},
		{
			name: "sign in with email",
			request: map[string]string{
				"userNameOrEmail": user.Email,
				"password":        rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"userNameOrEmail": user.Username,
				"password":        "Wrongpass1!",
			},
			expectedStatus: http.StatusUnauthorized,
			checkResponse: func(t *testing.T, resp *http.Response) {
				assert.Nil(t, testutil.CookieByName(resp, "access_token"), "failed sign-in must not set cookies")
			},
		},
		{
			name: "non-existent user",
			request: map[string]string{
				"userNameOrEmail": "nonexistent",
				"password":        "Anypass1!",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			request: map[string]string{
				"userNameOrEmail": user.Username,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/sign-in"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Check(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _, cookies := testutil.NewUserBuilder().
		WithUsername("checkuser").
		BuildAndAuthenticate(t, ts)

	var accessCookie, refreshCookie *http.Cookie
	for _, c := range cookies {
		switch c.Name {
		case "access_token":
			accessCookie = c
		case "refresh_token":
			refreshCookie = c
		}
	}
	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)

	client := &http.Client{}
	checkURL := ts.APIURL(fmt.Sprintf("/auth/check/%s", user.ID))

	t.Run("valid access token passes through", func(t *testing.T) {
		req, err := http.NewRequest("GET", checkURL, nil)
		require.NoError(t, err)
		req.AddCookie(accessCookie)
		req.AddCookie(refreshCookie)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			AccessToken string `json:"accessToken"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, accessCookie.Value, result.AccessToken)
		// No refresh happened, so no new cookies
		assert.Nil(t, testutil.CookieByName(resp, "access_token"))
	})

	t.Run("refresh token mints a new pair", func(t *testing.T) {
		req, err := http.NewRequest("GET", checkURL, nil)
		require.NoError(t, err)
		req.AddCookie(refreshCookie)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		newAccess := testutil.CookieByName(resp, "access_token")
		newRefresh := testutil.CookieByName(resp, "refresh_token")
		require.NotNil(t, newAccess)
		require.NotNil(t, newRefresh)
		assert.NotEqual(t, refreshCookie.Value, newRefresh.Value)

		// The old refresh token was rotated out
		retry, err := http.NewRequest("GET", checkURL, nil)
		require.NoError(t, err)
		retry.AddCookie(refreshCookie)

		retryResp, err := client.Do(retry)
		require.NoError(t, err)
		defer retryResp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, retryResp.StatusCode)
	})

	t.Run("no tokens", func(t *testing.T) {
		resp, err := http.Get(checkURL)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed user id", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/check/not-a-uuid"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthHandler_SignOut(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token, _ := testutil.NewUserBuilder().
		WithUsername("signoutuser").
		BuildAndAuthenticate(t, ts)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "successful sign out", token: token, expectedStatus: http.StatusOK},
		{name: "no token", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", token: "notajwt", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.CreateAuthenticatedRequest(t, "POST", ts.APIURL("/auth/sign-out"), nil, tt.token)

			client := &http.Client{}
			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAdminGate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, userToken, _ := testutil.NewUserBuilder().
		WithUsername("plainuser").
		BuildAndAuthenticate(t, ts)

	admin, _ := testutil.NewUserBuilder().
		WithUsername("adminuser").
		WithRole(domain.RoleAdmin).
		Build(t, ts.DB.DB)
	adminToken, err := ts.Services.Token.IssueAccessToken(admin)
	require.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "admin allowed", token: adminToken, expectedStatus: http.StatusOK},
		{name: "plain user rejected", token: userToken, expectedStatus: http.StatusUnauthorized},
		{name: "anonymous rejected", token: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.CreateAuthenticatedRequest(t, "GET", ts.APIURL("/user/"), nil, tt.token)

			client := &http.Client{}
			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
