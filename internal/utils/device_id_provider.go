package utils

import "github.com/google/uuid"

//go:generate $MOCKGEN -source=device_id_provider.go -destination=mocks/device_id_provider_mock.go

// DeviceIDProvider supplies the device identifier sent with every request.
type DeviceIDProvider interface {
	// GetDeviceID returns the identifier of this installation.
	GetDeviceID() string
}

// StaticDeviceIDProvider always returns the same identifier.
type StaticDeviceIDProvider struct {
	deviceID string
}

// NewStaticDeviceIDProvider creates a provider pinned to the given identifier.
func NewStaticDeviceIDProvider(deviceID string) *StaticDeviceIDProvider {
	return &StaticDeviceIDProvider{deviceID: deviceID}
}

// GetDeviceID returns the pinned identifier.
func (p *StaticDeviceIDProvider) GetDeviceID() string {
	return p.deviceID
}

// RandomDeviceIDProvider generates one random identifier per process
// and keeps returning it.
type RandomDeviceIDProvider struct {
	deviceID string
}

// NewRandomDeviceIDProvider creates a provider with a fresh random identifier.
func NewRandomDeviceIDProvider() *RandomDeviceIDProvider {
	return &RandomDeviceIDProvider{deviceID: uuid.NewString()}
}

// GetDeviceID returns the identifier generated at construction time.
func (p *RandomDeviceIDProvider) GetDeviceID() string {
	return p.deviceID
}
