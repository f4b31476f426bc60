// jamfpro/models.go
package jamfpro

// NamedResource is a building or department as the API lists them. Names are
// not guaranteed unique server-side; callers treating them as lookup keys
// deduplicate themselves.
type NamedResource struct {
	ID   string
	Name string
}

// LocationSnapshot is the canonical read model used to prefill the location
// form. It is produced from either the Pro or Classic read path; fields the
// server did not provide stay nil and are never defaulted.
type LocationSnapshot struct {
	Username       *string
	RealName       *string
	Email          *string
	Room           *string
	AssetTag       *string
	BuildingID     *string
	DepartmentID   *string
	BuildingName   *string
	DepartmentName *string
}

// LocationUpdate carries the location fields of an update. The Pro API
// addresses buildings and departments by id; the Classic API addresses them
// by name, so both forms are carried and each backend reads its own.
type LocationUpdate struct {
	Username     *string `json:"username,omitempty"`
	RealName     *string `json:"realName,omitempty"`
	EmailAddress *string `json:"emailAddress,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	BuildingID   *string `json:"buildingId,omitempty"`
	Room         *string `json:"room,omitempty"`

	BuildingName   *string `json:"-"`
	DepartmentName *string `json:"-"`
}

// ExtensionAttribute is a custom server-defined metadata field stamped onto a
// device record on update.
type ExtensionAttribute struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Value             []string `json:"value"`
	CollectionAllowed bool     `json:"collectionAllowed"`
}

// UpdatePayload is the write-side model, built fresh per submission. Unset
// fields are omitted from the serialized body so the server leaves them
// untouched.
type UpdatePayload struct {
	Name                *string              `json:"name,omitempty"`
	AssetTag            *string              `json:"assetTag,omitempty"`
	SiteID              *string              `json:"siteId,omitempty"`
	TimeZone            *string              `json:"timeZone,omitempty"`
	Location            *LocationUpdate      `json:"location,omitempty"`
	ExtensionAttributes []ExtensionAttribute `json:"extensionAttributes,omitempty"`
}
