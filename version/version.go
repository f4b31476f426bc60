// version.go
package version

// AppName holds the name of the application
var AppName = "jamf-locator"

// Version holds the current version of the application
var Version = "0.3.1"

// UserAgent returns the User-Agent string sent with every API request.
func UserAgent() string {
	return AppName + "/" + Version
}
