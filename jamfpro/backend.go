// jamfpro/backend.go
package jamfpro

import "context"

// Backend is the capability surface both Jamf API generations implement. The
// resource layer depends only on this interface; whether the Pro or Classic
// variant is active is decided once, at construction, from the credential
// strategy. The two are never blended.
type Backend interface {
	ListBuildings(ctx context.Context) ([]NamedResource, error)
	ListDepartments(ctx context.Context) ([]NamedResource, error)
	GetSnapshot(ctx context.Context, deviceID string) (*LocationSnapshot, error)
	Update(ctx context.Context, deviceID string, payload UpdatePayload) error
}
