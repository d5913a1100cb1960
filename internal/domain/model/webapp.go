package model

// WebAppRecord is the fully resolved, semantically typed view of a
// descriptor's fields. It is only ever produced by validation, never
// constructed partially.
type WebAppRecord struct {
	Name    string
	AppID   string
	Version string

	Browser *InstalledBrowser

	// URL is the normalized target URL; Domain and URLPath are derived
	// from it during validation.
	URL     string
	Domain  string
	URLPath string

	Isolate  bool
	Maximize bool

	IconPath    string
	ProfilePath string

	Category    string
	Description string
}
