// jamfpro/normalize_test.go
package jamfpro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSnapshotFieldVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, s *LocationSnapshot)
	}{
		{
			name:    "snake_case integer asset tag coerces to decimal string",
			payload: `{"asset_tag": 1234}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.AssetTag)
				assert.Equal(t, "1234", *s.AssetTag)
			},
		},
		{
			name:    "camelCase string asset tag passes through",
			payload: `{"assetTag": "AB-01"}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.AssetTag)
				assert.Equal(t, "AB-01", *s.AssetTag)
			},
		},
		{
			name:    "asset tag nested under general",
			payload: `{"general": {"assetTag": "G-9"}}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.AssetTag)
				assert.Equal(t, "G-9", *s.AssetTag)
			},
		},
		{
			name:    "numeric building id under location",
			payload: `{"location": {"buildingId": 7}}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.BuildingID)
				assert.Equal(t, "7", *s.BuildingID)
			},
		},
		{
			name:    "snake_case department id",
			payload: `{"department_id": "12"}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.DepartmentID)
				assert.Equal(t, "12", *s.DepartmentID)
			},
		},
		{
			name:    "realName vs real_name",
			payload: `{"location": {"real_name": "Jane Doe"}}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.RealName)
				assert.Equal(t, "Jane Doe", *s.RealName)
			},
		},
		{
			name:    "emailAddress preferred over nothing",
			payload: `{"userAndLocation": {"emailAddress": "jdoe@acme.org", "username": "jdoe"}}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				require.NotNil(t, s.Email)
				assert.Equal(t, "jdoe@acme.org", *s.Email)
				require.NotNil(t, s.Username)
				assert.Equal(t, "jdoe", *s.Username)
			},
		},
		{
			name:    "absent fields stay nil",
			payload: `{"name": "iPad"}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				assert.Nil(t, s.AssetTag)
				assert.Nil(t, s.Username)
				assert.Nil(t, s.Email)
				assert.Nil(t, s.BuildingID)
			},
		},
		{
			name:    "explicit null stays nil",
			payload: `{"assetTag": null, "location": {"room": null}}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				assert.Nil(t, s.AssetTag)
				assert.Nil(t, s.Room)
			},
		},
		{
			name:    "empty string stays nil",
			payload: `{"location": {"room": ""}}`,
			check: func(t *testing.T, s *LocationSnapshot) {
				assert.Nil(t, s.Room)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NormalizeSnapshot([]byte(tt.payload)))
		})
	}
}

func TestMergeSnapshotOnlyFillsMissingFields(t *testing.T) {
	dst := &LocationSnapshot{Username: strptr("jdoe")}
	src := &LocationSnapshot{Username: strptr("other"), AssetTag: strptr("A-1")}

	mergeSnapshot(dst, src)

	assert.Equal(t, "jdoe", *dst.Username, "resolved fields are never overwritten")
	require.NotNil(t, dst.AssetTag)
	assert.Equal(t, "A-1", *dst.AssetTag)
}
