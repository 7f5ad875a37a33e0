package http

import (
	"net/http"

	"github.com/tradexhq/passport-cli/internal/utils"
)

// DeviceIDInjector is a custom http.RoundTripper that injects device identity headers into HTTP requests.
// It wraps another http.RoundTripper and ensures that the X-Device-ID and User-Agent headers
// are present in every request.
type DeviceIDInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// deviceIDProvider provides the device identifier to inject.
	deviceIDProvider utils.DeviceIDProvider
}

// NewDeviceIDInjector creates and returns a new instance of DeviceIDInjector.
// It takes an underlying http.RoundTripper and a DeviceIDProvider to supply the identifier.
func NewDeviceIDInjector(next http.RoundTripper, deviceIDProvider utils.DeviceIDProvider) http.RoundTripper {
	return &DeviceIDInjector{
		next:             next,
		deviceIDProvider: deviceIDProvider,
	}
}

// RoundTrip executes a single HTTP transaction and injects the device headers if they are missing.
// It implements the http.RoundTripper interface.
func (t *DeviceIDInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(deviceIDHeader) == "" {
		req.Header.Set(deviceIDHeader, t.deviceIDProvider.GetDeviceID())
	}

	if req.Header.Get(userAgentHeader) == "" {
		req.Header.Set(userAgentHeader, DefaultUserAgent)
	}

	return t.next.RoundTrip(req)
}
