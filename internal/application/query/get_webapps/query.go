package get_webapps

// GetWebAppsQuery lists the web apps owned by this application.
type GetWebAppsQuery struct{}

// Name returns the name of the query.
func (q GetWebAppsQuery) Name() string {
	return "GetWebApps"
}
