package passport

const (
	// memberLoginURI is the URI path for account (username/password) sign-in.
	memberLoginURI = "api/member/login"
	// mobileLoginURI is the URI path for code-based sign-in (phone and email).
	mobileLoginURI = "api/member/login/mobile"
	// mobileCheckURI is the URI path for the phone registration status check.
	mobileCheckURI = "api/member/mobile/v2/check"
	// emailCheckURI is the URI path for email registration status and code checks.
	emailCheckURI = "api/member/email/v2/check"
	// registerCheckURI is the URI path for the account uniqueness check.
	registerCheckURI = "api/member/register/check"
	// registerURI is the URI path for member registration.
	registerURI = "api/member/register"
	// publicKeyURI is the URI path for the credential encryption public key.
	publicKeyURI = "api/member/public-key"
	// smsSendURI is the URI path prefix for SMS verification code delivery.
	smsSendURI = "api/sms/send"
	// emailSendURI is the URI path prefix for email verification code delivery.
	emailSendURI = "api/email/send"
	// memberProfileURI is the URI path for the member profile endpoint.
	memberProfileURI = "api/member/profile"
	// graphQLURI is the URI path for the GraphQL endpoint.
	graphQLURI = "api/graphql"
)

const (
	// apiCodeSuccess is the envelope code the API uses for accepted requests.
	apiCodeSuccess = 1

	// BizTypeRegister tags a registration status check running in the registration context.
	BizTypeRegister = "register"
	// BizTypeLogin tags a registration status check running in the sign-in context.
	BizTypeLogin = "login"

	// registerTypeEmail marks email-based sign-in and registration requests.
	registerTypeEmail = "EMAIL"

	// defaultUserType is the member category assigned to self-service registrations.
	defaultUserType = 1
)
