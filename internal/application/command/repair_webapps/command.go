package repair_webapps

// RepairWebAppsCommand checks every owned descriptor's filesystem paths and
// rebuilds what can be rebuilt.
type RepairWebAppsCommand struct{}

// Name returns the name of the command.
func (c RepairWebAppsCommand) Name() string {
	return "RepairWebApps"
}
