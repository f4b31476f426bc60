package jamfpro

// Endpoint constants represent the URL suffixes for the Jamf resource endpoints this client consumes.
const (
	ProBuildingsEndpoint       = "/api/v1/buildings"                // ProBuildingsEndpoint: paginated buildings list.
	ProDepartmentsEndpoint     = "/api/v1/departments"              // ProDepartmentsEndpoint: paginated departments list.
	ProMobileDevicesEndpoint   = "/api/v2/mobile-devices"           // ProMobileDevicesEndpoint: device read and PATCH update.
	ProInventoryEndpoint       = "/api/v1/mobile-devices-inventory" // ProInventoryEndpoint: inventory search fallback.
	ClassicBuildingsEndpoint   = "/JSSResource/buildings"           // ClassicBuildingsEndpoint: XML buildings list.
	ClassicDepartmentsEndpoint = "/JSSResource/departments"         // ClassicDepartmentsEndpoint: XML departments list.
	ClassicMobileDeviceFormat  = "/JSSResource/mobiledevices/id/"   // ClassicMobileDeviceFormat: XML device read and PUT update, device id appended.
)

// listPageSize is the page size requested from the paginated Pro list endpoints.
const listPageSize = 100
