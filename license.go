package lifeadmin

import "regexp"

// DemoLicenseKey unlocks the app without a purchase.
const DemoLicenseKey = "DEMO"

var licenseKeyRE = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// ValidLicenseKey reports whether key is the demo key or matches the
// XXXX-XXXX-XXXX-XXXX pattern of purchased keys.
func ValidLicenseKey(key string) bool {
	return key == DemoLicenseKey || licenseKeyRE.MatchString(key)
}
