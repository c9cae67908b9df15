package storage

import (
	"wmsession/internal/domain"
	"wmsession/internal/logging"
)

// saveModelToDomain converts a SaveModel (GORM) to domain.SaveEntry
func saveModelToDomain(m SaveModel) domain.SaveEntry {
	scope, err := domain.ParseSaveScope(m.Scope)
	if err != nil {
		logging.Logger.Warn("Unknown scope in catalog, assuming local", "path", m.Path, "scope", m.Scope)
		scope = domain.SaveLocal
	}
	return domain.SaveEntry{
		ClientID:    m.ClientID,
		Path:        m.Path,
		SavedAt:     m.SavedAt,
		Scope:       scope,
		Success:     m.Success,
		WindowCount: m.WindowCount,
	}
}

// domainToSaveModel converts a domain.SaveEntry to SaveModel (GORM)
func domainToSaveModel(e domain.SaveEntry) SaveModel {
	return SaveModel{
		ClientID:    e.ClientID,
		Path:        e.Path,
		SavedAt:     e.SavedAt.UTC(),
		Scope:       e.Scope.String(),
		Success:     e.Success,
		WindowCount: e.WindowCount,
	}
}
