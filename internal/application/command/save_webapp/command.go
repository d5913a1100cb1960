package save_webapp

// SaveWebAppCommand creates a new web app or rewrites an existing one. An
// empty AppID means create.
type SaveWebAppCommand struct {
	AppID       string
	AppName     string
	URL         string
	BrowserID   string
	Isolate     bool
	Maximize    bool
	IconPath    string
	Category    string
	Description string
}

// Name returns the name of the command.
func (c SaveWebAppCommand) Name() string {
	return "SaveWebApp"
}
