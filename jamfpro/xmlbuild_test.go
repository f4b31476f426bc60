// jamfpro/xmlbuild_test.go
package jamfpro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDeviceXMLOmitsUnsetFields(t *testing.T) {
	payload := UpdatePayload{
		Location: &LocationUpdate{
			Username: strptr("jdoe"),
			// Room deliberately unset.
		},
	}

	doc := BuildDeviceXML(payload)

	assert.Contains(t, doc, "<username>jdoe</username>")
	assert.NotContains(t, doc, "<room>", "unset fields omit the tag entirely")
	assert.NotContains(t, doc, "<general>", "no general section without general fields")
}

func TestBuildDeviceXMLEscapesText(t *testing.T) {
	payload := UpdatePayload{
		AssetTag: strptr(`<A&"B'>`),
		Location: &LocationUpdate{
			DepartmentName: strptr("R&D"),
		},
	}

	doc := BuildDeviceXML(payload)

	assert.Contains(t, doc, "<asset_tag>&lt;A&amp;&#34;B&#39;&gt;</asset_tag>")
	assert.Contains(t, doc, "<department>R&amp;D</department>")
}

func TestBuildDeviceXMLSectionLayout(t *testing.T) {
	payload := UpdatePayload{
		Name:     strptr("iPad-42"),
		AssetTag: strptr("A-42"),
		Location: &LocationUpdate{
			Username:       strptr("jdoe"),
			RealName:       strptr("Jane Doe"),
			EmailAddress:   strptr("jdoe@acme.org"),
			BuildingName:   strptr("NYC HQ"),
			DepartmentName: strptr("Radiology"),
			Room:           strptr("214"),
		},
	}

	doc := BuildDeviceXML(payload)

	assert.Equal(t,
		"<mobile_device>"+
			"<general><name>iPad-42</name><asset_tag>A-42</asset_tag></general>"+
			"<location>"+
			"<username>jdoe</username>"+
			"<real_name>Jane Doe</real_name>"+
			"<email>jdoe@acme.org</email>"+
			"<building>NYC HQ</building>"+
			"<department>Radiology</department>"+
			"<room>214</room>"+
			"</location>"+
			"</mobile_device>",
		doc)
}
