// jamfpro/classic.go
package jamfpro

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/mdmtools/jamf-locator/httpclient"
	"github.com/mdmtools/jamf-locator/logger"
	"go.uber.org/zap"
)

// ClassicBackend implements Backend against the legacy Classic API
// (/JSSResource, XML request and response bodies).
type ClassicBackend struct {
	client *httpclient.Client
	log    logger.Logger
}

// NewClassicBackend returns a Backend speaking the legacy Classic API.
func NewClassicBackend(client *httpclient.Client) *ClassicBackend {
	return &ClassicBackend{client: client, log: client.Logger}
}

// ListBuildings fetches the buildings list in one XML request.
func (b *ClassicBackend) ListBuildings(ctx context.Context) ([]NamedResource, error) {
	return b.listNames(ctx, ClassicBuildingsEndpoint)
}

// ListDepartments fetches the departments list in one XML request.
func (b *ClassicBackend) ListDepartments(ctx context.Context) ([]NamedResource, error) {
	return b.listNames(ctx, ClassicDepartmentsEndpoint)
}

// listNames extracts every <name> text node from the XML list response, in
// document order, without deduplication.
func (b *ClassicBackend) listNames(ctx context.Context, endpoint string) ([]NamedResource, error) {
	raw, err := b.client.DoRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, b.log.Error("Failed to parse XML list response", zap.String("endpoint", endpoint), zap.Error(err))
	}

	var resources []NamedResource
	for _, node := range xmlquery.Find(doc, "//name") {
		if name := strings.TrimSpace(node.InnerText()); name != "" {
			resources = append(resources, NamedResource{Name: name})
		}
	}

	return resources, nil
}

// classicSnapshotTags maps the XML tags scanned out of a Classic device read
// to setters on the snapshot. Missing or empty tags leave the field nil.
var classicSnapshotTags = []struct {
	tag    string
	assign func(*LocationSnapshot, *string)
}{
	{"username", func(s *LocationSnapshot, v *string) { s.Username = v }},
	{"real_name", func(s *LocationSnapshot, v *string) { s.RealName = v }},
	{"email", func(s *LocationSnapshot, v *string) { s.Email = v }},
	{"room", func(s *LocationSnapshot, v *string) { s.Room = v }},
	{"asset_tag", func(s *LocationSnapshot, v *string) { s.AssetTag = v }},
	{"building", func(s *LocationSnapshot, v *string) { s.BuildingName = v }},
	{"department", func(s *LocationSnapshot, v *string) { s.DepartmentName = v }},
}

// GetSnapshot reads the device record once and scans the named tags out of
// the XML.
func (b *ClassicBackend) GetSnapshot(ctx context.Context, deviceID string) (*LocationSnapshot, error) {
	raw, err := b.client.DoRequest(ctx, http.MethodGet, ClassicMobileDeviceFormat+deviceID, nil)
	if err != nil {
		return nil, err
	}

	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, b.log.Error("Failed to parse XML device response", zap.String("device_id", deviceID), zap.Error(err))
	}

	snapshot := &LocationSnapshot{}
	for _, entry := range classicSnapshotTags {
		node := xmlquery.FindOne(doc, "//"+entry.tag)
		if node == nil {
			continue
		}
		if text := strings.TrimSpace(node.InnerText()); text != "" {
			value := text
			entry.assign(snapshot, &value)
		}
	}

	return snapshot, nil
}

// Update builds the full XML document from the provided fields and PUTs it,
// replacing the device's general and location sections. Fields the caller did
// not set are omitted from the document entirely.
func (b *ClassicBackend) Update(ctx context.Context, deviceID string, payload UpdatePayload) error {
	body := BuildDeviceXML(payload)
	_, err := b.client.DoRequest(ctx, http.MethodPut, ClassicMobileDeviceFormat+deviceID, []byte(body))
	return err
}
