package descriptor

import (
	"fmt"
	"strings"

	"webapps-manager/internal/config"
	"webapps-manager/internal/domain/model"
	"webapps-manager/pkg/log"
	"webapps-manager/pkg/template"
)

// Conditional keys every browser template may use. is_isolated injects the
// profile path as its value; is_maximized is a bare flag.
const (
	conditionalIsolated  = "is_isolated"
	conditionalMaximized = "is_maximized"
)

// Render produces a brand-new document by substituting the resolved record
// into its browser's template. Semantic fields are re-applied through the
// typed setters afterwards so they are present even when the template omits
// a placeholder.
func Render(record *model.WebAppRecord, savePath string) (*Document, error) {
	command, err := record.Browser.RunCommand()
	if err != nil {
		return nil, fmt.Errorf("failed to build run command: %w", err)
	}

	appID := config.AppNameShort + "-" + record.AppID

	vars := map[string]string{
		"command":     command,
		"name":        record.Name,
		"url":         record.URL,
		"domain":      record.Domain,
		"domain_path": domainPath(record),
		"icon":        record.IconPath,
		"app_id":      appID,
	}

	text := template.Substitute(record.Browser.Template, vars)

	text, err = template.ReplaceConditional(text, conditionalIsolated, record.Isolate, record.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to replace conditional %q: %w", conditionalIsolated, err)
	}

	text, err = template.ReplaceConditional(text, conditionalMaximized, record.Maximize, "")
	if err != nil {
		return nil, fmt.Errorf("failed to replace conditional %q: %w", conditionalMaximized, err)
	}

	// A leftover conditional means the template names a condition the
	// renderer knows nothing about. The placeholder stays in the output,
	// which makes the authoring mistake visible instead of silent.
	if keys := template.UnmatchedConditionals(text); len(keys) > 0 {
		log.Warn("template contains unresolved conditional keys",
			"browser", record.Browser.ConfigName,
			"keys", strings.Join(keys, ","))
	}

	doc, err := FromString(savePath, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered descriptor: %w", err)
	}

	doc.SetOwned()
	doc.SetID(record.AppID)
	doc.SetVersion(record.Version)
	doc.SetURL(record.URL)
	doc.SetBrowserID(record.Browser.ID)
	doc.SetIsolated(record.Isolate)
	doc.SetMaximized(record.Maximize)
	doc.SetProfilePath(record.ProfilePath)

	if record.Description != "" {
		doc.SetDescription(record.Description)
	}
	if record.Category != "" {
		doc.SetCategory(record.Category)
	} else {
		doc.SetCategory(DefaultCategory)
	}

	return doc, nil
}

// domainPath derives the template's %{domain_path} value. Chromium-based
// browsers expect the slash-flattened form they use for their own app ids;
// everyone else gets domain and path concatenated as-is.
func domainPath(record *model.WebAppRecord) string {
	if record.Browser.Base == model.BaseChromium {
		return strings.ReplaceAll(record.Domain+"/"+record.URLPath, "/", "_")
	}
	return record.Domain + record.URLPath
}
