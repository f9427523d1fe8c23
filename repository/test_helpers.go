package repository

import (
	"wordleworld/application"
	"wordleworld/database"
)

// NewTestUnitOfWorkFactory creates a unit of work factory for tests
func NewTestUnitOfWorkFactory(db *database.DB) application.UnitOfWorkFactory {
	return NewUnitOfWorkFactory(db)
}

// CreateTestUnitOfWork creates a guild-scoped unit of work for testing
func CreateTestUnitOfWork(db *database.DB, guildID int64) application.UnitOfWork {
	return NewTestUnitOfWorkFactory(db).CreateForGuild(guildID)
}
