package get_webapps

import (
	"webapps-manager/internal/domain/service/webapp"
)

// WebAppInfo is the flattened listing view of one owned descriptor.
type WebAppInfo struct {
	AppID     string
	Name      string
	URL       string
	BrowserID string
	Version   string
	Isolated  bool
	Maximized bool
	Path      string
}

// GetWebAppsQueryHandler handles GetWebAppsQuery.
type GetWebAppsQueryHandler struct {
	manager *webapp.Manager
}

// NewGetWebAppsQueryHandler creates a new GetWebAppsQueryHandler.
func NewGetWebAppsQueryHandler(manager *webapp.Manager) *GetWebAppsQueryHandler {
	return &GetWebAppsQueryHandler{manager: manager}
}

// Handle lists every owned descriptor, sorted by name.
func (h *GetWebAppsQueryHandler) Handle(query GetWebAppsQuery) ([]WebAppInfo, error) {
	docs, err := h.manager.ListOwned()
	if err != nil {
		return nil, err
	}

	infos := make([]WebAppInfo, 0, len(docs))
	for _, doc := range docs {
		info := WebAppInfo{Path: doc.Path()}
		info.AppID, _ = doc.GetID()
		info.Name, _ = doc.GetName()
		info.URL, _ = doc.GetURL()
		info.BrowserID, _ = doc.GetBrowserID()
		info.Version, _ = doc.GetVersion()
		info.Isolated, _ = doc.GetIsolated()
		info.Maximized, _ = doc.GetMaximized()
		infos = append(infos, info)
	}
	return infos, nil
}
