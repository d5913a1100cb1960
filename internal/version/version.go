package version

import "webapps-manager/pkg/semver"

// version is stamped into every descriptor the application writes. Saved
// descriptors carrying an older value are migrated on the next update pass.
var version = "0.2.0"

func GetVersion() string {
	return version
}

func GetNumericVersion() int {
	return semver.GetNumericVersion(version)
}
