package update_webapps

// UpdateWebAppsCommand migrates owned descriptors written by an older
// application version. An empty AppID means all of them.
type UpdateWebAppsCommand struct {
	AppID string
}

// Name returns the name of the command.
func (c UpdateWebAppsCommand) Name() string {
	return "UpdateWebApps"
}
