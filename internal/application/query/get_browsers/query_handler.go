package get_browsers

import (
	"webapps-manager/internal/domain/model"
	"webapps-manager/internal/infra/browsers"
)

// GetBrowsersQueryHandler handles GetBrowsersQuery.
type GetBrowsersQueryHandler struct {
	registry *browsers.Registry
}

// NewGetBrowsersQueryHandler creates a new GetBrowsersQueryHandler.
func NewGetBrowsersQueryHandler(registry *browsers.Registry) *GetBrowsersQueryHandler {
	return &GetBrowsersQueryHandler{registry: registry}
}

// Handle returns browser summaries: installed entries first, uninstalled
// ones appended when requested.
func (h *GetBrowsersQueryHandler) Handle(query GetBrowsersQuery) ([]model.BrowserSummary, error) {
	entries := h.registry.Installed()
	if query.IncludeUninstalled {
		entries = h.registry.All()
	}

	summaries := make([]model.BrowserSummary, 0, len(entries))
	for _, browser := range entries {
		summaries = append(summaries, browser.Summary())
	}
	return summaries, nil
}
