package descriptor

import (
	"net/url"

	"webapps-manager/internal/domain/model"
	"webapps-manager/pkg/semver"
)

// BrowserLookup resolves a stored browser id against the current registry
// snapshot.
type BrowserLookup interface {
	ByID(id string) (*model.InstalledBrowser, bool)
}

// Resolve converts a document into a fully resolved WebAppRecord, or a
// ValidationError naming the first field that fails. It is pure: no
// filesystem or network access, and it never partially applies.
func Resolve(doc *Document, browsers BrowserLookup) (*model.WebAppRecord, error) {
	name, ok := doc.GetName()
	if !ok {
		return nil, &ValidationError{Field: FieldName, Message: MsgMissing}
	}

	appID, ok := doc.GetID()
	if !ok {
		return nil, &ValidationError{Field: FieldID, Message: MsgMissing}
	}

	rawVersion, ok := doc.GetVersion()
	if !ok {
		return nil, &ValidationError{Field: FieldVersion, Message: MsgMissing}
	}
	parsedVersion, err := semver.Parse(rawVersion)
	if err != nil {
		return nil, &ValidationError{Field: FieldVersion, Message: MsgInvalid}
	}

	rawURL, ok := doc.GetURL()
	if !ok {
		return nil, &ValidationError{Field: FieldURL, Message: MsgMissing}
	}
	parsedURL, err := url.Parse(rawURL)
	if err != nil || !parsedURL.IsAbs() {
		return nil, &ValidationError{Field: FieldURL, Message: MsgInvalid}
	}
	domain := parsedURL.Hostname()
	if domain == "" {
		return nil, &ValidationError{Field: FieldURL, Message: MsgInvalidDomain}
	}

	browserID, ok := doc.GetBrowserID()
	if !ok {
		return nil, &ValidationError{Field: FieldBrowser, Message: MsgMissing}
	}
	browser, ok := browsers.ByID(browserID)
	if !ok {
		return nil, &ValidationError{Field: FieldBrowser, Message: MsgMissing}
	}

	isolate, ok := doc.GetIsolated()
	if !ok {
		return nil, &ValidationError{Field: FieldIsolated, Message: MsgMissing}
	}

	maximize, ok := doc.GetMaximized()
	if !ok {
		return nil, &ValidationError{Field: FieldMaximized, Message: MsgMissing}
	}

	iconPath, ok := doc.GetIconPath()
	if !ok {
		return nil, &ValidationError{Field: FieldIcon, Message: MsgMissing}
	}

	// The profile path is only meaningful for isolated web apps; without
	// isolation it resolves to empty rather than failing.
	profilePath, ok := doc.GetProfilePath()
	if !ok {
		if isolate {
			return nil, &ValidationError{Field: FieldProfile, Message: MsgMissing}
		}
		profilePath = ""
	}

	category, _ := doc.GetCategory()
	description, _ := doc.GetDescription()

	return &model.WebAppRecord{
		Name:        name,
		AppID:       appID,
		Version:     parsedVersion.String(),
		Browser:     browser,
		URL:         parsedURL.String(),
		Domain:      domain,
		URLPath:     parsedURL.EscapedPath(),
		Isolate:     isolate,
		Maximize:    maximize,
		IconPath:    iconPath,
		ProfilePath: profilePath,
		Category:    category,
		Description: description,
	}, nil
}
