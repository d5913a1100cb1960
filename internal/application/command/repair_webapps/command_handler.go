package repair_webapps

import (
	"webapps-manager/internal/domain/service/webapp"
)

// RepairWebAppsCommandHandler handles RepairWebAppsCommand.
type RepairWebAppsCommandHandler struct {
	manager *webapp.Manager
}

// NewRepairWebAppsCommandHandler creates a new RepairWebAppsCommandHandler.
func NewRepairWebAppsCommandHandler(manager *webapp.Manager) *RepairWebAppsCommandHandler {
	return &RepairWebAppsCommandHandler{manager: manager}
}

// Handle repairs the paths of every owned descriptor. Path checks never fail
// the command; problems are logged.
func (h *RepairWebAppsCommandHandler) Handle(cmd RepairWebAppsCommand) error {
	docs, err := h.manager.ListOwned()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		h.manager.CheckPaths(doc)
	}
	return nil
}
