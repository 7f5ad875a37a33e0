package passport

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/machinebox/graphql"

	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/logger"
	http_transport "github.com/tradexhq/passport-cli/internal/transport/http"
	"github.com/tradexhq/passport-cli/internal/utils"
)

// Client defines the interface for interacting with the Tradex member API.
type Client interface {
	// LoginByAccount signs in with a username and an encrypted password.
	LoginByAccount(ctx context.Context, request *AccountLoginRequest) (*Session, error)
	// LoginByMobile signs in with a phone number and a verification code.
	LoginByMobile(ctx context.Context, request *MobileLoginRequest) (*Session, error)
	// LoginByEmail signs in with an email address and a verification code.
	LoginByEmail(ctx context.Context, request *EmailLoginRequest) (*Session, error)
	// CheckMobileRegistration reports whether a phone number belongs to an existing member.
	// The bizType tag marks the context (sign-in or registration) the check runs in.
	CheckMobileRegistration(ctx context.Context, phone, code, bizType string) (bool, error)
	// CheckEmailRegistration reports whether an email address belongs to an existing member.
	// The bizType tag marks the context (sign-in or registration) the check runs in.
	CheckEmailRegistration(ctx context.Context, email, code, bizType string) (bool, error)
	// VerifyEmailCode confirms a verification code delivered to an email address.
	VerifyEmailCode(ctx context.Context, email, code string) error
	// CheckAccountRegistration reports whether a username is already taken.
	CheckAccountRegistration(ctx context.Context, username string) (bool, error)
	// Register creates a member from a verified phone number.
	Register(ctx context.Context, request *RegisterRequest) (*Session, error)
	// RegisterByEmail creates a member from a verified email address.
	RegisterByEmail(ctx context.Context, request *EmailRegisterRequest) (*Session, error)
	// FetchPublicKey retrieves the PEM public key used for credential encryption.
	FetchPublicKey(ctx context.Context) (string, error)
	// SendSMSCode requests a verification code for a phone number in a dialing area.
	SendSMSCode(ctx context.Context, area, phone string) (*SendCodeResult, error)
	// SendEmailCode requests a verification code for an email address.
	SendEmailCode(ctx context.Context, email string) (*SendCodeResult, error)
	// GetMemberProfile retrieves the signed-in member's profile.
	GetMemberProfile(ctx context.Context) (*MemberProfile, error)
	// GetUnreadNoticeStatus retrieves the member's unread notice counter.
	GetUnreadNoticeStatus(ctx context.Context, memberID string) (*UnreadNoticeStatus, error)
	// GetBaseURL returns the base URL of the member API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for interacting with the Tradex member API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// graphQLClient is the GraphQL client for making queries.
	graphQLClient *graphql.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// Session tokens and device identifiers are injected by the transport,
// so every request carries them without the call sites knowing.
func NewClient(
	cfg *config.Config,
	tokenSource http_transport.TokenSource,
	deviceIDProvider utils.DeviceIDProvider,
) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewDeviceIDInjector(
			http_transport.NewTokenInjector(
				http_transport.NewLogTransport(http.DefaultTransport, 0),
				tokenSource),
			deviceIDProvider),
		Timeout: timeout,
	}

	graphQLURL := baseURL.JoinPath(graphQLURI)
	graphQLClient := graphql.NewClient(graphQLURL.String(), graphql.WithHTTPClient(httpClient))

	client := &ClientImpl{
		cfg:           cfg,
		baseURL:       baseURL.String(),
		httpClient:    httpClient,
		graphQLClient: graphQLClient,
	}

	return client, nil
}

// LoginByAccount signs in with a username and an encrypted password.
func (c *ClientImpl) LoginByAccount(ctx context.Context, request *AccountLoginRequest) (*Session, error) {
	result, err := postJSON[*Session](c, ctx, memberLoginURI, request)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// LoginByMobile signs in with a phone number and a verification code.
func (c *ClientImpl) LoginByMobile(ctx context.Context, request *MobileLoginRequest) (*Session, error) {
	result, err := postJSON[*Session](c, ctx, mobileLoginURI, request)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// LoginByEmail signs in with an email address and a verification code.
// The request goes to the same endpoint as phone sign-in, marked by RegisterType.
func (c *ClientImpl) LoginByEmail(ctx context.Context, request *EmailLoginRequest) (*Session, error) {
	request.RegisterType = registerTypeEmail

	result, err := postJSON[*Session](c, ctx, mobileLoginURI, request)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// CheckMobileRegistration reports whether a phone number belongs to an existing member.
// The bizType tag marks the context (sign-in or registration) the check runs in.
func (c *ClientImpl) CheckMobileRegistration(ctx context.Context, phone, code, bizType string) (bool, error) {
	query := url.Values{}
	query.Set("phone", phone)
	query.Set("code", code)
	query.Set("bizType", bizType)

	result, err := getJSON[bool](c, ctx, mobileCheckURI, query)
	if err != nil {
		return false, err
	}

	return result.Data, nil
}

// CheckEmailRegistration reports whether an email address belongs to an existing member.
// The bizType tag marks the context (sign-in or registration) the check runs in.
func (c *ClientImpl) CheckEmailRegistration(ctx context.Context, email, code, bizType string) (bool, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("code", code)
	query.Set("bizType", bizType)

	result, err := getJSON[bool](c, ctx, emailCheckURI, query)
	if err != nil {
		return false, err
	}

	return result.Data, nil
}

// VerifyEmailCode confirms a verification code delivered to an email address.
// The check always runs in the registration context.
func (c *ClientImpl) VerifyEmailCode(ctx context.Context, email, code string) error {
	payload := map[string]string{
		"email":   email,
		"code":    code,
		"bizType": BizTypeRegister,
	}

	_, err := postJSON[json.RawMessage](c, ctx, emailCheckURI, payload)

	return err
}

// CheckAccountRegistration reports whether a username is already taken.
func (c *ClientImpl) CheckAccountRegistration(ctx context.Context, username string) (bool, error) {
	payload := map[string]string{
		"username": username,
	}

	result, err := postJSON[struct {
		Registered bool `json:"registered"`
	}](c, ctx, registerCheckURI, payload)
	if err != nil {
		return false, err
	}

	return result.Data.Registered, nil
}

// Register creates a member from a verified phone number.
func (c *ClientImpl) Register(ctx context.Context, request *RegisterRequest) (*Session, error) {
	request.UserType = defaultUserType

	result, err := postJSON[*Session](c, ctx, registerURI, request)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// RegisterByEmail creates a member from a verified email address.
func (c *ClientImpl) RegisterByEmail(ctx context.Context, request *EmailRegisterRequest) (*Session, error) {
	request.RegisterType = registerTypeEmail

	result, err := postJSON[*Session](c, ctx, registerURI, request)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// FetchPublicKey retrieves the PEM public key used for credential encryption.
func (c *ClientImpl) FetchPublicKey(ctx context.Context) (string, error) {
	result, err := getJSON[string](c, ctx, publicKeyURI, nil)
	if err != nil {
		return "", err
	}

	key := strings.TrimSpace(result.Data)
	if key == "" {
		return "", ErrEmptyPublicKey
	}

	return key, nil
}

// SendSMSCode requests a verification code for a phone number in a dialing area.
// The area and phone are path segments, mirroring the web client's routes.
func (c *ClientImpl) SendSMSCode(ctx context.Context, area, phone string) (*SendCodeResult, error) {
	uri, err := url.JoinPath(smsSendURI, area, phone)
	if err != nil {
		return nil, err
	}

	result, err := postJSON[json.RawMessage](c, ctx, uri, nil)
	if err != nil {
		return nil, err
	}

	return &SendCodeResult{Message: result.Message}, nil
}

// SendEmailCode requests a verification code for an email address.
func (c *ClientImpl) SendEmailCode(ctx context.Context, email string) (*SendCodeResult, error) {
	uri, err := url.JoinPath(emailSendURI, email)
	if err != nil {
		return nil, err
	}

	result, err := postJSON[json.RawMessage](c, ctx, uri, nil)
	if err != nil {
		return nil, err
	}

	return &SendCodeResult{Message: result.Message}, nil
}

// GetMemberProfile retrieves the signed-in member's profile.
// Some environments compress the profile payload; a string data field
// is treated as a base64 zlib blob and inflated before decoding.
func (c *ClientImpl) GetMemberProfile(ctx context.Context) (*MemberProfile, error) {
	result, err := getJSON[json.RawMessage](c, ctx, memberProfileURI, nil)
	if err != nil {
		return nil, err
	}

	raw := result.Data

	var encoded string
	if json.Unmarshal(raw, &encoded) == nil && encoded != "" {
		logger.Debugf(ctx, "Profile payload is compressed, inflating %d bytes", len(encoded))

		raw, err = utils.DecodeCompressedPayload(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode profile payload: %w", err)
		}
	}

	var profile MemberProfile
	if err = json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return &profile, nil
}

// GetUnreadNoticeStatus retrieves the member's unread notice counter.
func (c *ClientImpl) GetUnreadNoticeStatus(ctx context.Context, memberID string) (*UnreadNoticeStatus, error) {
	graphqlRequest := graphql.NewRequest(`
		query unreadNoticeStatus($memberId: ID!) {
			unreadNoticeStatus(memberId: $memberId) {
				total
			}
		}
	`)

	graphqlRequest.Var("memberId", memberID)

	var graphQLResponse map[string]any
	if err := c.graphQLClient.Run(ctx, graphqlRequest, &graphQLResponse); err != nil {
		return nil, err
	}

	status, ok := graphQLResponse["unreadNoticeStatus"].(map[string]any)
	if !ok {
		return nil, ErrUnexpectedNoticeFormat
	}

	total, ok := status["total"].(float64)
	if !ok {
		return nil, ErrUnexpectedNoticeFormat
	}

	return &UnreadNoticeStatus{Total: int(total)}, nil
}

// GetBaseURL returns the base URL of the member API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}
