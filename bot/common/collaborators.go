package common

import (
	"wordleworld/domain/interfaces"
)

// Collaborators bundles the Discord-side adapters every game feature
// needs to construct its domain services. The bot builds one set at
// startup and hands it to each feature.
type Collaborators struct {
	Channels    interfaces.ChannelManager
	Notifier    interfaces.Notifier
	Renderer    interfaces.Renderer
	Definitions interfaces.DefinitionLookup
	RoleSync    interfaces.RoleSyncer
}
