// jamfpro/xmlbuild.go
package jamfpro

import (
	"encoding/xml"
	"strings"
)

// BuildDeviceXML renders the Classic API update document for a device. Only
// fields the caller set produce tags; an unset field omits its tag entirely
// so the server leaves the stored value alone. All text content is
// XML-escaped.
func BuildDeviceXML(payload UpdatePayload) string {
	var b strings.Builder
	b.WriteString("<mobile_device>")

	if payload.Name != nil || payload.AssetTag != nil {
		b.WriteString("<general>")
		writeTag(&b, "name", payload.Name)
		writeTag(&b, "asset_tag", payload.AssetTag)
		b.WriteString("</general>")
	}

	if loc := payload.Location; loc != nil {
		b.WriteString("<location>")
		writeTag(&b, "username", loc.Username)
		writeTag(&b, "real_name", loc.RealName)
		writeTag(&b, "email", loc.EmailAddress)
		writeTag(&b, "building", loc.BuildingName)
		writeTag(&b, "department", loc.DepartmentName)
		writeTag(&b, "room", loc.Room)
		b.WriteString("</location>")
	}

	b.WriteString("</mobile_device>")
	return b.String()
}

// writeTag appends <tag>escaped value</tag>, or nothing when value is nil.
func writeTag(b *strings.Builder, tag string, value *string) {
	if value == nil {
		return
	}
	b.WriteString("<" + tag + ">")
	xml.EscapeText(b, []byte(*value))
	b.WriteString("</" + tag + ">")
}
