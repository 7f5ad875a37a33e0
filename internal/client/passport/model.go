package passport

// Session represents the authenticated state returned by sign-in and registration.
type Session struct {
	// Token is the session token attached to subsequent API requests.
	Token string `json:"token"`
	// MemberID is the unique identifier of the member.
	MemberID string `json:"memberId"`
	// Username is the display name of the member.
	Username string `json:"username"`
	// Phone is the phone number bound to the member, if any.
	Phone string `json:"phone"`
	// Email is the email address bound to the member, if any.
	Email string `json:"email"`
}

// AccountLoginRequest is the payload for username/password sign-in.
type AccountLoginRequest struct {
	// Username is the account name or bound phone/email.
	Username string `json:"username"`
	// Password is the credential, already encrypted and base64-encoded.
	Password string `json:"password"`
	// ExclusiveDomain is the white-label domain this sign-in belongs to, if any.
	ExclusiveDomain string `json:"exclusiveDomain,omitempty"`
}

// MobileLoginRequest is the payload for phone code sign-in.
type MobileLoginRequest struct {
	// Phone is the phone number receiving the verification code.
	Phone string `json:"phone"`
	// Code is the verification code entered by the member.
	Code string `json:"code"`
	// TransactionPassword is the trading credential, sent as entered.
	// The platform accepts it empty on this path.
	TransactionPassword string `json:"transactionPassword"`
}

// EmailLoginRequest is the payload for email code sign-in.
// It goes to the same endpoint as phone sign-in, marked by RegisterType.
type EmailLoginRequest struct {
	// Email is the address receiving the verification code.
	Email string `json:"email"`
	// Code is the verification code entered by the member.
	Code string `json:"code"`
	// RegisterType distinguishes email requests on the shared endpoint.
	RegisterType string `json:"registerType"`
}

// RegisterRequest is the payload for phone-based member registration.
type RegisterRequest struct {
	// Username is the chosen account name.
	Username string `json:"username"`
	// Phone is the verified phone number.
	Phone string `json:"phone"`
	// Code is the verification code delivered to the phone.
	Code string `json:"code"`
	// InviterPhone is the referrer phone number, if any.
	InviterPhone string `json:"inviterPhone,omitempty"`
	// UserType is the member category, defaultUserType for self-service signups.
	UserType int `json:"userType"`
	// LoginPassword is the sign-in credential, encrypted and base64-encoded.
	LoginPassword string `json:"loginPassword"`
	// TransactionPassword is the trading credential, encrypted and base64-encoded.
	TransactionPassword string `json:"transactionPassword"`
	// ExclusiveDomain is the white-label domain this registration belongs to, if any.
	ExclusiveDomain string `json:"exclusiveDomain,omitempty"`
}

// EmailRegisterRequest is the payload for email-based member registration.
type EmailRegisterRequest struct {
	// Username is the chosen account name.
	Username string `json:"username"`
	// Email is the verified email address.
	Email string `json:"email"`
	// Code is the verification code delivered to the address.
	Code string `json:"code"`
	// Password is the sign-in credential, encrypted and base64-encoded.
	Password string `json:"password"`
	// TransactionPassword is sent empty on the email path; the member sets it later.
	TransactionPassword string `json:"transactionPassword"`
	// RegisterType distinguishes email registrations on the shared endpoint.
	RegisterType string `json:"registerType"`
	// ExclusiveDomain is the white-label domain this registration belongs to, if any.
	ExclusiveDomain string `json:"exclusiveDomain,omitempty"`
}

// SendCodeResult carries the envelope message of a successful code delivery.
// Some environments return the verification code itself in the message.
type SendCodeResult struct {
	// Message is the envelope message, possibly the code itself.
	Message string
}

// MemberProfile represents the signed-in member's profile.
type MemberProfile struct {
	// MemberID is the unique identifier of the member.
	MemberID string `json:"memberId"`
	// Username is the display name of the member.
	Username string `json:"username"`
	// Phone is the phone number bound to the member, if any.
	Phone string `json:"phone"`
	// Email is the email address bound to the member, if any.
	Email string `json:"email"`
	// RealNameVerified is true once identity verification is complete.
	RealNameVerified bool `json:"realNameVerified"`
	// Balance is the available account balance.
	Balance float64 `json:"balance"`
	// FrozenBalance is the balance locked by open orders.
	FrozenBalance float64 `json:"frozenBalance"`
}

// UnreadNoticeStatus reports how many notices the member has not read yet.
type UnreadNoticeStatus struct {
	// Total is the number of unread notices.
	Total int `json:"total"`
}
