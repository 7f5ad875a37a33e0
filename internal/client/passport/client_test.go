package passport

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/utils"
)

// staticTokenSource is a TokenSource pinned to a fixed value.
type staticTokenSource string

func (s staticTokenSource) Token() string { return string(s) }

func newTestClient(t *testing.T, serverURL, token string) Client {
	t.Helper()

	cfg := &config.Config{
		BaseURL:              serverURL,
		ParsedRequestTimeout: 5 * time.Second,
	}

	client, err := NewClient(cfg, staticTokenSource(token), utils.NewStaticDeviceIDProvider("test-device"))
	require.NoError(t, err)

	return client
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, message string, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
		"data":    data,
	})
	require.NoError(t, err)
}

// TestClient_LoginByAccount tests account sign-in, header injection, and rejection handling.
func TestClient_LoginByAccount(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/member/login", r.URL.Path)
			assert.Equal(t, "test-device", r.Header.Get("X-Device-ID"))

			var request AccountLoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "trader1", request.Username)
			assert.NotEmpty(t, request.Password)

			writeEnvelope(t, w, 1, "", &Session{
				Token:    "session-token",
				MemberID: "m-1",
				Username: "trader1",
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")

		session, err := client.LoginByAccount(t.Context(), &AccountLoginRequest{
			Username: "trader1",
			Password: "ZW5jcnlwdGVk",
		})
		require.NoError(t, err)
		assert.Equal(t, "session-token", session.Token)
		assert.Equal(t, "m-1", session.MemberID)
	})

	t.Run("rejected envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, 0, "wrong password", nil)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")

		_, err := client.LoginByAccount(t.Context(), &AccountLoginRequest{
			Username: "trader1",
			Password: "ZW5jcnlwdGVk",
		})
		require.Error(t, err)
		require.ErrorIs(t, err, ErrRequestRejected)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "wrong password", apiErr.Message)
	})

	t.Run("unexpected http status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")

		_, err := client.LoginByAccount(t.Context(), &AccountLoginRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	})
}

// TestClient_CheckMobileRegistration tests the phone registration status check.
// The caller's bizType tag is forwarded and the response is a plain boolean.
func TestClient_CheckMobileRegistration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/member/mobile/v2/check", r.URL.Path)
		assert.Equal(t, "13812345678", r.URL.Query().Get("phone"))
		assert.Equal(t, "9999", r.URL.Query().Get("code"))
		assert.Equal(t, BizTypeRegister, r.URL.Query().Get("bizType"))

		writeEnvelope(t, w, 1, "", true)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	registered, err := client.CheckMobileRegistration(t.Context(), "13812345678", "9999", BizTypeRegister)
	require.NoError(t, err)
	assert.True(t, registered)
}

// TestClient_CheckEmailRegistration tests the email registration status check.
func TestClient_CheckEmailRegistration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/member/email/v2/check", r.URL.Path)
		assert.Equal(t, "user@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "9999", r.URL.Query().Get("code"))
		assert.Equal(t, BizTypeLogin, r.URL.Query().Get("bizType"))

		writeEnvelope(t, w, 1, "", false)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	registered, err := client.CheckEmailRegistration(t.Context(), "user@example.com", "9999", BizTypeLogin)
	require.NoError(t, err)
	assert.False(t, registered)
}

// TestClient_LoginByEmail tests that email sign-in marks the shared endpoint.
func TestClient_LoginByEmail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/member/login/mobile", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "user@example.com", payload["email"])
		assert.Equal(t, "EMAIL", payload["registerType"])

		writeEnvelope(t, w, 1, "", &Session{Token: "email-session"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	session, err := client.LoginByEmail(t.Context(), &EmailLoginRequest{
		Email: "user@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-session", session.Token)
}

// TestClient_FetchPublicKey tests public key retrieval.
func TestClient_FetchPublicKey(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/member/public-key", r.URL.Path)
			writeEnvelope(t, w, 1, "", "-----BEGIN PUBLIC KEY-----\nabc\n-----END PUBLIC KEY-----")
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")

		key, err := client.FetchPublicKey(t.Context())
		require.NoError(t, err)
		assert.Contains(t, key, "BEGIN PUBLIC KEY")
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(t, w, 1, "", "   ")
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")

		_, err := client.FetchPublicKey(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyPublicKey)
	})
}

// TestClient_SendSMSCode tests SMS code delivery and the in-band code message.
func TestClient_SendSMSCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sms/send/86/13812345678", r.URL.Path)

		writeEnvelope(t, w, 1, "424242", nil)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	result, err := client.SendSMSCode(t.Context(), "86", "13812345678")
	require.NoError(t, err)
	assert.Equal(t, "424242", result.Message)
}

// TestClient_SendEmailCode tests email code delivery.
func TestClient_SendEmailCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/email/send/user@example.com", r.URL.Path)
		writeEnvelope(t, w, 1, "", nil)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	result, err := client.SendEmailCode(t.Context(), "user@example.com")
	require.NoError(t, err)
	assert.Empty(t, result.Message)
}

// TestClient_VerifyEmailCode tests email code verification.
func TestClient_VerifyEmailCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/member/email/v2/check", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "user@example.com", payload["email"])
		assert.Equal(t, "123456", payload["code"])
		assert.Equal(t, BizTypeRegister, payload["bizType"])

		writeEnvelope(t, w, 1, "", nil)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	require.NoError(t, client.VerifyEmailCode(t.Context(), "user@example.com", "123456"))
}

// TestClient_GetMemberProfile tests profile retrieval, including compressed payloads.
func TestClient_GetMemberProfile(t *testing.T) {
	t.Parallel()

	profile := &MemberProfile{
		MemberID: "m-1",
		Username: "trader1",
		Balance:  1234.56,
	}

	t.Run("plain payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/member/profile", r.URL.Path)
			assert.Equal(t, "session-token", r.Header.Get("X-Auth-Token"))

			writeEnvelope(t, w, 1, "", profile)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "session-token")

		result, err := client.GetMemberProfile(t.Context())
		require.NoError(t, err)
		assert.Equal(t, profile.MemberID, result.MemberID)
		assert.InEpsilon(t, profile.Balance, result.Balance, 0.0001)
	})

	t.Run("compressed payload", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(profile)
		require.NoError(t, err)

		var compressed bytes.Buffer

		writer := zlib.NewWriter(&compressed)
		_, err = writer.Write(raw)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(t, w, 1, "", encoded)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "session-token")

		result, err := client.GetMemberProfile(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "trader1", result.Username)
	})
}

// TestClient_CheckAccountRegistration tests the account uniqueness check.
func TestClient_CheckAccountRegistration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/member/register/check", r.URL.Path)

		writeEnvelope(t, w, 1, "", map[string]bool{"registered": true})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	registered, err := client.CheckAccountRegistration(t.Context(), "trader1")
	require.NoError(t, err)
	assert.True(t, registered)
}

// TestClient_Register tests phone-based registration payload shaping.
func TestClient_Register(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/member/register", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.InDelta(t, float64(1), payload["userType"], 0)
		assert.Equal(t, "13812345678", payload["phone"])
		assert.NotEmpty(t, payload["loginPassword"])
		assert.NotEmpty(t, payload["transactionPassword"])

		writeEnvelope(t, w, 1, "", &Session{Token: "fresh-session"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	session, err := client.Register(t.Context(), &RegisterRequest{
		Username:            "trader1",
		Phone:               "13812345678",
		Code:                "123456",
		LoginPassword:       "bG9naW4=",
		TransactionPassword: "dHhu",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-session", session.Token)
}

// TestClient_RegisterByEmail tests that the email path keeps the transaction password empty.
func TestClient_RegisterByEmail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "EMAIL", payload["registerType"])
		assert.Equal(t, "", payload["transactionPassword"])

		writeEnvelope(t, w, 1, "", &Session{Token: "email-session"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	session, err := client.RegisterByEmail(t.Context(), &EmailRegisterRequest{
		Username: "trader1",
		Email:    "user@example.com",
		Code:     "123456",
		Password: "bG9naW4=",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-session", session.Token)
}

// TestClient_GetUnreadNoticeStatus tests the GraphQL unread notice query.
func TestClient_GetUnreadNoticeStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/graphql", r.URL.Path)

		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body.Query, "unreadNoticeStatus")
		assert.Equal(t, "m-1", body.Variables["memberId"])

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"data":{"unreadNoticeStatus":{"total":3}}}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "session-token")

	status, err := client.GetUnreadNoticeStatus(t.Context(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Total)
}

// TestClient_GetBaseURL tests that the configured base URL is reported back.
func TestClient_GetBaseURL(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.tradex.pro", "")

	assert.Equal(t, "https://api.tradex.pro", client.GetBaseURL())
}

// TestAPIError_Unwrap tests that APIError matches the sentinel in errors.Is.
func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &APIError{Code: 4001, Message: "duplicate account"}

	assert.True(t, errors.Is(err, ErrRequestRejected))
	assert.Contains(t, err.Error(), "duplicate account")
}
