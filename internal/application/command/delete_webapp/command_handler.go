package delete_webapp

import (
	"webapps-manager/internal/domain/service/webapp"
)

// DeleteWebAppCommandHandler handles DeleteWebAppCommand.
type DeleteWebAppCommandHandler struct {
	manager *webapp.Manager
}

// NewDeleteWebAppCommandHandler creates a new DeleteWebAppCommandHandler.
func NewDeleteWebAppCommandHandler(manager *webapp.Manager) *DeleteWebAppCommandHandler {
	return &DeleteWebAppCommandHandler{manager: manager}
}

// Handle removes the web app with the given id.
func (h *DeleteWebAppCommandHandler) Handle(cmd DeleteWebAppCommand) error {
	doc, err := h.manager.FindByAppID(cmd.AppID)
	if err != nil {
		return err
	}
	return h.manager.Delete(doc)
}
