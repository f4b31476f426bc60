// jamfpro/normalize.go
package jamfpro

import (
	"github.com/tidwall/gjson"
)

// NormalizeSnapshot decodes a device payload from any of the Pro read
// endpoints into the canonical snapshot. The payload shapes disagree on field
// naming (snake_case vs camelCase, email vs emailAddress, nesting under
// location vs userAndLocation) and on encoding (asset tags and ids arrive as
// strings or integers), so each canonical field tries its known variants in
// order. Numbers coerce to their decimal string form. Fields absent after all
// variants stay nil.
func NormalizeSnapshot(raw []byte) *LocationSnapshot {
	return &LocationSnapshot{
		Username: firstString(raw,
			"location.username", "userAndLocation.username", "username"),
		RealName: firstString(raw,
			"location.realName", "location.real_name", "location.realname",
			"userAndLocation.realName", "userAndLocation.realname",
			"realName", "real_name"),
		Email: firstString(raw,
			"location.emailAddress", "location.email",
			"userAndLocation.emailAddress", "userAndLocation.email",
			"emailAddress", "email"),
		Room: firstString(raw,
			"location.room", "userAndLocation.room", "room"),
		AssetTag: firstString(raw,
			"assetTag", "asset_tag",
			"general.assetTag", "general.asset_tag"),
		BuildingID: firstString(raw,
			"location.buildingId", "location.building_id",
			"userAndLocation.buildingId", "buildingId", "building_id"),
		DepartmentID: firstString(raw,
			"location.departmentId", "location.department_id",
			"userAndLocation.departmentId", "departmentId", "department_id"),
		BuildingName: firstString(raw,
			"location.building", "userAndLocation.building", "building"),
		DepartmentName: firstString(raw,
			"location.department", "userAndLocation.department", "department"),
	}
}

// firstString returns the first non-null, non-empty value among the candidate
// paths, coerced to a string. Numeric values render as decimal strings.
func firstString(raw []byte, paths ...string) *string {
	for _, path := range paths {
		v := gjson.GetBytes(raw, path)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		s := v.String()
		if s == "" {
			continue
		}
		return &s
	}
	return nil
}

// mergeSnapshot fills nil fields of dst from src, leaving resolved fields
// untouched. Used by the prefill fallback chain so each fallback only
// contributes what is still missing.
func mergeSnapshot(dst, src *LocationSnapshot) {
	if dst.Username == nil {
		dst.Username = src.Username
	}
	if dst.RealName == nil {
		dst.RealName = src.RealName
	}
	if dst.Email == nil {
		dst.Email = src.Email
	}
	if dst.Room == nil {
		dst.Room = src.Room
	}
	if dst.AssetTag == nil {
		dst.AssetTag = src.AssetTag
	}
	if dst.BuildingID == nil {
		dst.BuildingID = src.BuildingID
	}
	if dst.DepartmentID == nil {
		dst.DepartmentID = src.DepartmentID
	}
	if dst.BuildingName == nil {
		dst.BuildingName = src.BuildingName
	}
	if dst.DepartmentName == nil {
		dst.DepartmentName = src.DepartmentName
	}
}

// snapshotNeedsMore reports whether the prefill chain should keep trying
// fallbacks: the chain short-circuits once the asset tag and the location
// block are both present.
func snapshotNeedsMore(s *LocationSnapshot) bool {
	return s.AssetTag == nil || s.Username == nil
}
