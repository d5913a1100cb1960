package save_webapp

import (
	"fmt"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/domain/descriptor"
	"webapps-manager/internal/domain/service/icon"
	"webapps-manager/internal/domain/service/webapp"
)

// SaveWebAppCommandHandler handles SaveWebAppCommand.
type SaveWebAppCommandHandler struct {
	manager *webapp.Manager
	dirs    *appdirs.AppDirs
}

// NewSaveWebAppCommandHandler creates a new SaveWebAppCommandHandler.
func NewSaveWebAppCommandHandler(manager *webapp.Manager, dirs *appdirs.AppDirs) *SaveWebAppCommandHandler {
	return &SaveWebAppCommandHandler{manager: manager, dirs: dirs}
}

// Handle assembles the descriptor from the command fields, stores the icon,
// builds the isolated profile when requested and saves the result.
func (h *SaveWebAppCommandHandler) Handle(cmd SaveWebAppCommand) error {
	var doc *descriptor.Document
	var err error

	if cmd.AppID != "" {
		doc, err = h.manager.FindByAppID(cmd.AppID)
	} else {
		doc, err = h.manager.Create()
	}
	if err != nil {
		return err
	}

	doc.SetName(cmd.AppName)
	doc.SetURL(cmd.URL)
	doc.SetBrowserID(cmd.BrowserID)
	doc.SetIsolated(cmd.Isolate)
	doc.SetMaximized(cmd.Maximize)

	if cmd.Category != "" {
		doc.SetCategory(cmd.Category)
	}
	if cmd.Description != "" {
		doc.SetDescription(cmd.Description)
	}

	if cmd.IconPath != "" {
		appID, _ := doc.GetID()
		stored, err := icon.Store(h.dirs, appID, cmd.IconPath)
		if err != nil {
			return fmt.Errorf("failed to store icon: %w", err)
		}
		doc.SetIconPath(stored)
	}

	if cmd.Isolate {
		if _, ok := doc.GetProfilePath(); !ok {
			if _, err := h.manager.BuildProfilePath(doc); err != nil {
				return err
			}
		}
	}

	_, err = h.manager.Save(doc)
	return err
}
