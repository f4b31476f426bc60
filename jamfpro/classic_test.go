// jamfpro/classic_test.go
package jamfpro

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicListBuildings(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/JSSResource/buildings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer legacy-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<buildings>
  <size>3</size>
  <building><id>1</id><name>NYC HQ</name></building>
  <building><id>2</id><name>Boston Clinic</name></building>
  <building><id>3</id><name>NYC HQ</name></building>
</buildings>`)
	})

	backend := NewClassicBackend(newClassicTestClient(t, mux))

	buildings, err := backend.ListBuildings(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(buildings))
	for _, b := range buildings {
		names = append(names, b.Name)
	}
	// Document order, duplicates preserved: deduplication is the caller's job.
	assert.Equal(t, []string{"NYC HQ", "Boston Clinic", "NYC HQ"}, names)
}

func TestClassicGetSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/JSSResource/mobiledevices/id/42", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<mobile_device>
  <general>
    <id>42</id>
    <asset_tag>A-0042</asset_tag>
  </general>
  <location>
    <username>jdoe</username>
    <real_name>Jane Doe</real_name>
    <email>jdoe@acme.org</email>
    <room></room>
    <building>NYC HQ</building>
    <department></department>
  </location>
</mobile_device>`)
	})

	backend := NewClassicBackend(newClassicTestClient(t, mux))

	snapshot, err := backend.GetSnapshot(context.Background(), "42")
	require.NoError(t, err)

	require.NotNil(t, snapshot.Username)
	assert.Equal(t, "jdoe", *snapshot.Username)
	require.NotNil(t, snapshot.RealName)
	assert.Equal(t, "Jane Doe", *snapshot.RealName)
	require.NotNil(t, snapshot.Email)
	assert.Equal(t, "jdoe@acme.org", *snapshot.Email)
	require.NotNil(t, snapshot.AssetTag)
	assert.Equal(t, "A-0042", *snapshot.AssetTag)
	require.NotNil(t, snapshot.BuildingName)
	assert.Equal(t, "NYC HQ", *snapshot.BuildingName)

	assert.Nil(t, snapshot.Room, "empty tag yields nil")
	assert.Nil(t, snapshot.DepartmentName, "empty tag yields nil")
	assert.Nil(t, snapshot.BuildingID, "Classic reads carry names, not ids")
}

func TestClassicUpdatePutsBuiltDocument(t *testing.T) {
	var captured string
	mux := http.NewServeMux()
	mux.HandleFunc("/JSSResource/mobiledevices/id/42", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = string(body)
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<mobile_device><id>42</id></mobile_device>`)
	})

	backend := NewClassicBackend(newClassicTestClient(t, mux))

	payload := UpdatePayload{
		AssetTag: strptr("A-77"),
		Location: &LocationUpdate{
			Username:     strptr("jdoe"),
			BuildingName: strptr("R&D Annex"),
		},
	}
	require.NoError(t, backend.Update(context.Background(), "42", payload))

	assert.Contains(t, captured, "<asset_tag>A-77</asset_tag>")
	assert.Contains(t, captured, "<username>jdoe</username>")
	assert.Contains(t, captured, "<building>R&amp;D Annex</building>")
	assert.NotContains(t, captured, "<room>")
}
