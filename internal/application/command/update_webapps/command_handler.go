package update_webapps

import (
	"errors"

	"webapps-manager/internal/domain/descriptor"
	"webapps-manager/internal/domain/service/webapp"
	"webapps-manager/pkg/log"
)

// UpdateWebAppsCommandHandler handles UpdateWebAppsCommand.
type UpdateWebAppsCommandHandler struct {
	manager *webapp.Manager
}

// NewUpdateWebAppsCommandHandler creates a new UpdateWebAppsCommandHandler.
func NewUpdateWebAppsCommandHandler(manager *webapp.Manager) *UpdateWebAppsCommandHandler {
	return &UpdateWebAppsCommandHandler{manager: manager}
}

// Handle migrates the outdated descriptors. A descriptor that fails to
// migrate does not stop the rest; failures are aggregated.
func (h *UpdateWebAppsCommandHandler) Handle(cmd UpdateWebAppsCommand) error {
	var docs []*descriptor.Document

	if cmd.AppID != "" {
		doc, err := h.manager.FindByAppID(cmd.AppID)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	} else {
		all, err := h.manager.ListOwned()
		if err != nil {
			return err
		}
		docs = all
	}

	var errs []error
	migrated := 0
	for _, doc := range docs {
		ok, err := h.manager.Update(doc)
		if err != nil {
			id, _ := doc.GetID()
			log.Warn("failed to migrate web app", "app_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		if ok {
			migrated++
		}
	}

	log.Info("web app migration finished", "total", len(docs), "migrated", migrated)
	return errors.Join(errs...)
}
