package delete_webapp

// DeleteWebAppCommand removes a web app: its descriptor, icon and isolated
// profile.
type DeleteWebAppCommand struct {
	AppID string
}

// Name returns the name of the command.
func (c DeleteWebAppCommand) Name() string {
	return "DeleteWebApp"
}
