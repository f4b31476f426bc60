// response/hint.go
package response

import "strings"

// PrivilegeHint maps a request path to the API role privileges that a 403
// response most likely indicates are missing. Only the client knows which
// privilege gates which endpoint family, so the mapping lives here rather
// than in the presentation layer.
func PrivilegeHint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v2/mobile-devices"),
		strings.HasPrefix(path, "/api/v1/mobile-devices-inventory"),
		strings.HasPrefix(path, "/JSSResource/mobiledevices"):
		return "grant the API client Read Mobile Devices and Update Mobile Devices privileges"
	case strings.HasPrefix(path, "/api/v1/buildings"),
		strings.HasPrefix(path, "/JSSResource/buildings"):
		return "grant the API client the Read Buildings privilege"
	case strings.HasPrefix(path, "/api/v1/departments"),
		strings.HasPrefix(path, "/JSSResource/departments"):
		return "grant the API client the Read Departments privilege"
	default:
		return "check the privileges assigned to the API client or role"
	}
}
