package descriptor

import (
	"regexp"
	"strings"
	"testing"

	"webapps-manager/internal/domain/model"
	"webapps-manager/internal/version"
)

type fakeLookup map[string]*model.InstalledBrowser

func (f fakeLookup) ByID(id string) (*model.InstalledBrowser, bool) {
	browser, ok := f[id]
	return browser, ok
}

const chromiumTemplate = `[Desktop Entry]
Type=Application
Name=%{name}
Icon=%{icon}
Exec=%{command} --app=%{url} --class=%{app_id} %{is_isolated ? --user-data-dir} %{is_maximized ? --start-maximized}
StartupWMClass=%{app_id}
`

func systemChromium(t *testing.T) *model.InstalledBrowser {
	t.Helper()
	def := model.BrowserDefinition{
		Name:                  "Brave",
		SystemBin:             "brave",
		CanIsolate:            true,
		CanStartMaximized:     true,
		DesktopFileNamePrefix: "brave",
		Base:                  "chromium",
	}
	return model.NewInstalledBrowser(def, "brave", chromiumTemplate,
		model.Installation{Kind: model.InstallSystem, Ref: "brave"})
}

func validDocument(t *testing.T, browser *model.InstalledBrowser) *Document {
	t.Helper()
	doc, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	doc.SetName("Test App")
	doc.SetURL("https://example.com")
	doc.SetBrowserID(browser.ID)
	doc.SetIsolated(false)
	doc.SetMaximized(false)
	doc.SetIconPath("/tmp/icon.png")
	return doc
}

func TestNewDocument(t *testing.T) {
	doc, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	id, ok := doc.GetID()
	if !ok {
		t.Fatal("new document has no app id")
	}
	if !regexp.MustCompile(`^[a-zA-Z0-9]{8}$`).MatchString(id) {
		t.Errorf("app id %q is not 8 alphanumeric characters", id)
	}

	v, ok := doc.GetVersion()
	if !ok || v != version.GetVersion() {
		t.Errorf("new document version = (%q, %v), want current app version %q", v, ok, version.GetVersion())
	}
}

func TestResolveFieldErrors(t *testing.T) {
	browser := systemChromium(t)
	lookup := fakeLookup{browser.ID: browser}

	tests := []struct {
		name      string
		mutate    func(*Document)
		wantField Field
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(d *Document) { d.SetName("") },
			wantField: FieldName,
			wantMsg:   MsgMissing,
		},
		{
			name:      "missing url",
			mutate:    func(d *Document) { d.SetURL("") },
			wantField: FieldURL,
			wantMsg:   MsgMissing,
		},
		{
			name:      "invalid url",
			mutate:    func(d *Document) { d.SetURL("not-a-url") },
			wantField: FieldURL,
			wantMsg:   MsgInvalid,
		},
		{
			name:      "url without host",
			mutate:    func(d *Document) { d.SetURL("file:///etc/hosts") },
			wantField: FieldURL,
			wantMsg:   MsgInvalidDomain,
		},
		{
			name:      "invalid version",
			mutate:    func(d *Document) { d.SetVersion("abc") },
			wantField: FieldVersion,
			wantMsg:   MsgInvalid,
		},
		{
			name:      "unknown browser",
			mutate:    func(d *Document) { d.SetBrowserID("org.example.Unknown") },
			wantField: FieldBrowser,
			wantMsg:   MsgMissing,
		},
		{
			name:      "missing icon",
			mutate:    func(d *Document) { d.SetIconPath("") },
			wantField: FieldIcon,
			wantMsg:   MsgMissing,
		},
		{
			name:      "isolated without profile",
			mutate:    func(d *Document) { d.SetIsolated(true) },
			wantField: FieldProfile,
			wantMsg:   MsgMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument(t, browser)
			tt.mutate(doc)

			_, err := Resolve(doc, lookup)
			if err == nil {
				t.Fatal("Resolve() succeeded, want validation error")
			}
			vErr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("Resolve() error = %v, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField || vErr.Message != tt.wantMsg {
				t.Errorf("Resolve() error = {%s %s}, want {%s %s}",
					vErr.Field, vErr.Message, tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestResolveSuccess(t *testing.T) {
	browser := systemChromium(t)
	lookup := fakeLookup{browser.ID: browser}

	doc := validDocument(t, browser)
	doc.SetURL("https://example.com/foo/bar")
	doc.SetDescription("A test app")

	record, err := Resolve(doc, lookup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if record.Name != "Test App" {
		t.Errorf("Name = %q", record.Name)
	}
	if record.Domain != "example.com" {
		t.Errorf("Domain = %q", record.Domain)
	}
	if record.URLPath != "/foo/bar" {
		t.Errorf("URLPath = %q", record.URLPath)
	}
	if record.Browser != browser {
		t.Error("Browser not resolved to registry entry")
	}
	if record.ProfilePath != "" {
		t.Errorf("ProfilePath = %q, want empty for non-isolated app", record.ProfilePath)
	}
	if record.Description != "A test app" {
		t.Errorf("Description = %q", record.Description)
	}
}

func TestResolveProfileDefaultsOnlyWhenNotIsolated(t *testing.T) {
	browser := systemChromium(t)
	lookup := fakeLookup{browser.ID: browser}

	doc := validDocument(t, browser)
	doc.SetIsolated(true)
	doc.SetProfilePath("/tmp/profiles/abc")

	record, err := Resolve(doc, lookup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !record.Isolate || record.ProfilePath != "/tmp/profiles/abc" {
		t.Errorf("record = {isolate:%v profile:%q}", record.Isolate, record.ProfilePath)
	}
}

func TestRenderChromiumDomainPath(t *testing.T) {
	def := model.BrowserDefinition{
		Name:      "Brave",
		SystemBin: "brave",
		Base:      "chromium",
	}
	tpl := "[Desktop Entry]\nName=%{name}\nX-Test-DomainPath=%{domain_path}\n"
	browser := model.NewInstalledBrowser(def, "brave", tpl,
		model.Installation{Kind: model.InstallSystem, Ref: "brave"})

	record := &model.WebAppRecord{
		Name:    "Test App",
		AppID:   "abcd1234",
		Version: "0.2.0",
		Browser: browser,
		URL:     "https://example.com/foo/bar",
		Domain:  "example.com",
		URLPath: "/foo/bar",
	}

	doc, err := Render(record, "/tmp/out.desktop")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(doc.String(), "X-Test-DomainPath=example.com__foo_bar") {
		t.Errorf("rendered text missing flattened domain path:\n%s", doc.String())
	}
}

func TestRenderFirefoxDomainPath(t *testing.T) {
	def := model.BrowserDefinition{
		Name:      "Firefox",
		SystemBin: "firefox",
		Base:      "firefox",
	}
	tpl := "[Desktop Entry]\nName=%{name}\nX-Test-DomainPath=%{domain_path}\n"
	browser := model.NewInstalledBrowser(def, "firefox", tpl,
		model.Installation{Kind: model.InstallSystem, Ref: "firefox"})

	record := &model.WebAppRecord{
		Name:    "Test App",
		AppID:   "abcd1234",
		Version: "0.2.0",
		Browser: browser,
		URL:     "https://example.com/foo",
		Domain:  "example.com",
		URLPath: "/foo",
	}

	doc, err := Render(record, "/tmp/out.desktop")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(doc.String(), "X-Test-DomainPath=example.com/foo") {
		t.Errorf("rendered text missing unflattened domain path:\n%s", doc.String())
	}
}

func TestRenderConditionalProfileLine(t *testing.T) {
	def := model.BrowserDefinition{
		Name:       "Brave",
		SystemBin:  "brave",
		CanIsolate: true,
		Base:       "chromium",
	}
	tpl := "[Desktop Entry]\nName=%{name}\n%{is_isolated ? Profile}\n"
	browser := model.NewInstalledBrowser(def, "brave", tpl,
		model.Installation{Kind: model.InstallSystem, Ref: "brave"})

	record := &model.WebAppRecord{
		Name:    "Test App",
		AppID:   "abcd1234",
		Version: "0.2.0",
		Browser: browser,
		URL:     "https://example.com",
		Domain:  "example.com",
	}

	doc, err := Render(record, "/tmp/out.desktop")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(doc.String(), "Profile") && !strings.Contains(doc.String(), "X-WebApps-Profile") {
		t.Errorf("non-isolated render should drop the Profile line:\n%s", doc.String())
	}

	record.Isolate = true
	record.ProfilePath = "/tmp/profiles/abcd1234"
	doc, err = Render(record, "/tmp/out.desktop")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(doc.String(), "Profile=/tmp/profiles/abcd1234") {
		t.Errorf("isolated render missing profile line:\n%s", doc.String())
	}
}

func TestRenderReappliesSemanticFields(t *testing.T) {
	browser := systemChromium(t)

	// Template deliberately omits every extension placeholder.
	browser.Template = "[Desktop Entry]\nType=Application\nName=%{name}\nExec=%{command} --app=%{url}\n"

	record := &model.WebAppRecord{
		Name:     "Test App",
		AppID:    "abcd1234",
		Version:  "0.2.0",
		Browser:  browser,
		URL:      "https://example.com",
		Domain:   "example.com",
		IconPath: "/tmp/icon.png",
	}

	doc, err := Render(record, "/tmp/out.desktop")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !doc.GetOwned() {
		t.Error("rendered document missing ownership marker")
	}
	if id, _ := doc.GetID(); id != "abcd1234" {
		t.Errorf("id = %q", id)
	}
	if v, _ := doc.GetVersion(); v != "0.2.0" {
		t.Errorf("version = %q", v)
	}
	if u, _ := doc.GetURL(); u != "https://example.com" {
		t.Errorf("url = %q", u)
	}
	if b, _ := doc.GetBrowserID(); b != browser.ID {
		t.Errorf("browser id = %q", b)
	}
	if category, _ := doc.GetCategory(); category != DefaultCategory {
		t.Errorf("category = %q, want default %q", category, DefaultCategory)
	}
	if exec, ok := doc.GetExec(); !ok || !strings.Contains(exec, "brave --app=https://example.com") {
		t.Errorf("exec = (%q, %v)", exec, ok)
	}
}
