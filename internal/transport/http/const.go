package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	// It mimics a common browser User-Agent so requests look like the web client.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint: lll

	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"

	// deviceIDHeader carries the installation identifier on every request.
	deviceIDHeader = "X-Device-ID"

	// authTokenHeader carries the session token once a member is signed in.
	authTokenHeader = "X-Auth-Token"
)
