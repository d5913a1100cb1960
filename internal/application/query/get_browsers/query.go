package get_browsers

// GetBrowsersQuery lists the browsers known to the registry.
type GetBrowsersQuery struct {
	// IncludeUninstalled adds definitions that matched no install probe.
	IncludeUninstalled bool
}

// Name returns the name of the query.
func (q GetBrowsersQuery) Name() string {
	return "GetBrowsers"
}
