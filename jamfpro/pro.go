// jamfpro/pro.go
package jamfpro

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mdmtools/jamf-locator/httpclient"
	"github.com/mdmtools/jamf-locator/logger"
	"github.com/mdmtools/jamf-locator/response"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ProBackend implements Backend against the modern Jamf Pro API (JSON).
type ProBackend struct {
	client *httpclient.Client
	log    logger.Logger
}

// NewProBackend returns a Backend speaking the modern Pro API.
func NewProBackend(client *httpclient.Client) *ProBackend {
	return &ProBackend{client: client, log: client.Logger}
}

// ListBuildings fetches all buildings, paginating to completion.
func (b *ProBackend) ListBuildings(ctx context.Context) ([]NamedResource, error) {
	return b.listNamed(ctx, ProBuildingsEndpoint)
}

// ListDepartments fetches all departments, paginating to completion.
func (b *ProBackend) ListDepartments(ctx context.Context) ([]NamedResource, error) {
	return b.listNamed(ctx, ProDepartmentsEndpoint)
}

// listNamed walks a paginated list endpoint in strictly increasing page
// order, accumulating results. The short page is the primary stop signal so
// the walk terminates even when the server misreports totalCount; the
// reported total is only a secondary cutoff.
func (b *ProBackend) listNamed(ctx context.Context, path string) ([]NamedResource, error) {
	var all []NamedResource
	total := -1

	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("page-size", strconv.Itoa(listPageSize))
		q.Set("sort", "id:asc")

		raw, err := b.client.DoRequest(ctx, http.MethodGet, path+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}

		pageCount := 0
		gjson.GetBytes(raw, "results").ForEach(func(_, item gjson.Result) bool {
			all = append(all, NamedResource{
				ID:   item.Get("id").String(),
				Name: item.Get("name").String(),
			})
			pageCount++
			return true
		})

		if total < 0 {
			if tc := gjson.GetBytes(raw, "totalCount"); tc.Exists() {
				total = int(tc.Int())
			}
		}

		if pageCount < listPageSize {
			break
		}
		if total >= 0 && len(all) >= total {
			break
		}
	}

	b.log.Debug("Paginated list complete", zap.String("path", path), zap.Int("count", len(all)), zap.Int("reported_total", total))
	return all, nil
}

// snapshotFetch is one strategy in the prefill fallback chain. A nil payload
// with a nil error means the endpoint had no data for this device (404), and
// the chain moves on.
type snapshotFetch struct {
	name  string
	fetch func(ctx context.Context, deviceID string) ([]byte, error)
}

// GetSnapshot assembles the prefill snapshot by walking the fetch chain in
// order: the device endpoint, then the detail endpoint, then the inventory
// search. Each fallback only contributes fields still missing, and the chain
// short-circuits once the asset tag and location block are resolved. Prefill
// is best-effort: failures anywhere in the chain degrade to partial (or
// empty) data rather than failing the caller.
func (b *ProBackend) GetSnapshot(ctx context.Context, deviceID string) (*LocationSnapshot, error) {
	chain := []snapshotFetch{
		{name: "device", fetch: b.fetchDevice},
		{name: "device_detail", fetch: b.fetchDeviceDetail},
		{name: "inventory", fetch: b.fetchInventory},
	}

	snapshot := &LocationSnapshot{}
	for _, strategy := range chain {
		raw, err := strategy.fetch(ctx, deviceID)
		if err != nil {
			b.log.Debug("Snapshot fetch strategy failed, trying next",
				zap.String("strategy", strategy.name), zap.Error(err))
			continue
		}
		if raw == nil {
			continue
		}

		mergeSnapshot(snapshot, NormalizeSnapshot(raw))
		if !snapshotNeedsMore(snapshot) {
			break
		}
	}

	return snapshot, nil
}

// fetchDevice reads the primary device endpoint.
func (b *ProBackend) fetchDevice(ctx context.Context, deviceID string) ([]byte, error) {
	return b.softGet(ctx, ProMobileDevicesEndpoint+"/"+deviceID)
}

// fetchDeviceDetail reads the secondary detail endpoint.
func (b *ProBackend) fetchDeviceDetail(ctx context.Context, deviceID string) ([]byte, error) {
	return b.softGet(ctx, ProMobileDevicesEndpoint+"/"+deviceID+"/detail")
}

// fetchInventory queries the inventory search with the filter form and, when
// that 404s, retries with the alternate ids form. The payload wraps matches
// in a results array; the first match is returned for normalization.
func (b *ProBackend) fetchInventory(ctx context.Context, deviceID string) ([]byte, error) {
	raw, err := b.softGet(ctx, ProInventoryEndpoint+"?"+url.Values{"filter": {"id==" + deviceID}}.Encode())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw, err = b.softGet(ctx, ProInventoryEndpoint+"?"+url.Values{"ids": {deviceID}}.Encode())
		if err != nil || raw == nil {
			return raw, err
		}
	}

	if results := gjson.GetBytes(raw, "results"); results.Exists() {
		first := results.Get("0")
		if !first.Exists() {
			return nil, nil
		}
		return []byte(first.Raw), nil
	}
	return raw, nil
}

// softGet performs a GET where 404 means "no data" rather than failure.
func (b *ProBackend) softGet(ctx context.Context, endpoint string) ([]byte, error) {
	raw, err := b.client.DoRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		var apiErr *response.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// Update PATCHes the device with a JSON body containing only the fields the
// caller set; unset fields are omitted so the server leaves them untouched.
func (b *ProBackend) Update(ctx context.Context, deviceID string, payload UpdatePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = b.client.DoRequest(ctx, http.MethodPatch, ProMobileDevicesEndpoint+"/"+deviceID, body)
	return err
}
