package dungeon

import (
	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/games"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the cooperative dungeon: opening runs, the join gate,
// guesses, and the owner's continue/cash-out decisions.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	registry   *games.Registry
	collab     common.Collaborators
}

// NewFeature creates a new dungeon feature instance
func NewFeature(
	session *discordgo.Session,
	uowFactory application.UnitOfWorkFactory,
	registry *games.Registry,
	collab common.Collaborators,
) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		registry:   registry,
		collab:     collab,
	}
}

// service builds the dungeon engine over the unit of work's repositories.
func (f *Feature) service(uow application.UnitOfWork, guildID int64) interfaces.DungeonService {
	ledger := services.NewLedgerService(guildID, uow.WalletRepository(), uow.InventoryRepository(), f.collab.RoleSync, uow)
	return services.NewDungeonService(
		guildID,
		f.registry,
		ledger,
		uow.StatsRepository(),
		f.collab.Channels,
		f.collab.Notifier,
		f.collab.Definitions,
	)
}

// HandleCommand routes /dungeon subcommands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "start":
		f.handleStart(s, i)
	case "join":
		f.handleJoin(s, i)
	case "lock":
		f.handleLock(s, i)
	case "continue":
		f.handleDecide(s, i, false)
	case "cashout":
		f.handleDecide(s, i, true)
	case "abandon":
		f.handleAbandon(s, i)
	}
}
