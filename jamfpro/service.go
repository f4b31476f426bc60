// jamfpro/service.go

/* The jamfpro package is the resource layer of the client: typed operations
for listing buildings and departments, reading a device's location snapshot,
validating names before submission, and writing location updates. It selects
the Pro or Classic backend once, from the client's credential strategy, and
everything above it depends only on the Backend interface. */

package jamfpro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mdmtools/jamf-locator/httpclient"
	"github.com/mdmtools/jamf-locator/logger"
	"github.com/mdmtools/jamf-locator/response"
)

// ExtensionAttributeSettings configures the optional extension-attribute
// stamp appended to Pro API updates.
type ExtensionAttributeSettings struct {
	Name              string // Server-side EA name.
	Type              string // "STRING" or "DATE".
	CollectionAllowed bool
	DateFormat        string // Go time layout for DATE stamps; RFC3339 when empty.
}

// Service exposes the resource operations to the caller.
type Service struct {
	backend Backend
	log     logger.Logger
	ea      *ExtensionAttributeSettings
}

// NewService builds a Service on the backend matching the client's credential
// strategy: OAuth credentials select the Pro API exclusively, legacy
// credentials the Classic API. ea may be nil when no stamping is configured.
func NewService(client *httpclient.Client, ea *ExtensionAttributeSettings) *Service {
	var backend Backend
	if client.HasOAuth() {
		backend = NewProBackend(client)
	} else {
		backend = NewClassicBackend(client)
	}
	return &Service{backend: backend, log: client.Logger, ea: ea}
}

// NewServiceWithBackend builds a Service on an explicit backend.
func NewServiceWithBackend(backend Backend, log logger.Logger, ea *ExtensionAttributeSettings) *Service {
	return &Service{backend: backend, log: log, ea: ea}
}

// ListBuildings returns all buildings known to the server.
func (s *Service) ListBuildings(ctx context.Context) ([]NamedResource, error) {
	return s.backend.ListBuildings(ctx)
}

// ListDepartments returns all departments known to the server.
func (s *Service) ListDepartments(ctx context.Context) ([]NamedResource, error) {
	return s.backend.ListDepartments(ctx)
}

// GetSnapshot returns the best-effort prefill snapshot for a device.
func (s *Service) GetSnapshot(ctx context.Context, deviceID string) (*LocationSnapshot, error) {
	return s.backend.GetSnapshot(ctx, deviceID)
}

// Update submits a location update. When stamp is true and an extension
// attribute is configured, the payload additionally carries the EA stamp;
// the Classic API has no EA surface in the update document, so the stamp
// only reaches the server on the Pro path.
func (s *Service) Update(ctx context.Context, deviceID string, payload UpdatePayload, stamp bool) error {
	if stamp && s.ea != nil && s.ea.Name != "" {
		payload.ExtensionAttributes = append(payload.ExtensionAttributes, s.stampAttribute(time.Now()))
	}
	return s.backend.Update(ctx, deviceID, payload)
}

// stampAttribute renders the configured extension attribute with the current
// timestamp as its value.
func (s *Service) stampAttribute(now time.Time) ExtensionAttribute {
	layout := s.ea.DateFormat
	if layout == "" {
		layout = time.RFC3339
	}
	return ExtensionAttribute{
		Name:              s.ea.Name,
		Type:              s.ea.Type,
		Value:             []string{now.Format(layout)},
		CollectionAllowed: s.ea.CollectionAllowed,
	}
}

// ValidateBuildingName checks that a building with exactly this name exists.
func (s *Service) ValidateBuildingName(ctx context.Context, name string) error {
	list, err := s.backend.ListBuildings(ctx)
	if err != nil {
		return err
	}
	return validateName("building", name, list)
}

// ValidateDepartmentName checks that a department with exactly this name exists.
func (s *Service) ValidateDepartmentName(ctx context.Context, name string) error {
	list, err := s.backend.ListDepartments(ctx)
	if err != nil {
		return err
	}
	return validateName("department", name, list)
}

// validateName performs an exact, case-sensitive match. The failure message
// enumerates every currently valid name so the caller can present them.
func validateName(kind, name string, list []NamedResource) error {
	names := make([]string, 0, len(list))
	for _, r := range list {
		if r.Name == name {
			return nil
		}
		names = append(names, r.Name)
	}
	return &response.ValidationError{
		Message: fmt.Sprintf("%s %q does not exist on the server; valid names: %s", kind, name, strings.Join(names, ", ")),
	}
}
