package descriptor

// Field names a descriptor key. Standard freedesktop keys coexist with the
// X-WebApps extension keys that carry the application's own state.
type Field string

const (
	FieldType       Field = "Type"
	FieldName       Field = "Name"
	FieldExec       Field = "Exec"
	FieldIcon       Field = "Icon"
	FieldCategories Field = "Categories"
	FieldComment    Field = "Comment"

	// FieldOwned marks a descriptor as generated and managed by this
	// application.
	FieldOwned     Field = "X-WebApps"
	FieldID        Field = "X-WebApps-Id"
	FieldVersion   Field = "X-WebApps-Version"
	FieldURL       Field = "X-WebApps-Url"
	FieldBrowser   Field = "X-WebApps-Browser"
	FieldIsolated  Field = "X-WebApps-Isolated"
	FieldMaximized Field = "X-WebApps-Maximized"
	FieldProfile   Field = "X-WebApps-Profile"
)

// DefaultCategory is applied when a descriptor does not choose one.
const DefaultCategory = "Network"
