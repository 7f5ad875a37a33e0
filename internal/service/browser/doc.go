// Package browser provides a browser-assisted fallback login.
//
// When verification code delivery is unavailable, the package opens the
// platform's web login page in a visible browser, lets the member sign in
// manually, and lifts the session token from the auth cookie.
package browser
