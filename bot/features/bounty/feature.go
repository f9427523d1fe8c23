package bounty

import (
	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/games"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"
	"wordleworld/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the guild-wide bounty: arm reactions on the hourly
// prompt and guesses typed into the bounty channel. The scheduler tick
// itself runs from the bot's worker, through the same service.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	registry   *games.Registry
	collab     common.Collaborators

	// armLocks is shared with the scheduler so reaction handling and
	// tick transitions serialize per guild.
	armLocks *utils.KeyedMutex
}

// NewFeature creates a new bounty feature instance
func NewFeature(
	session *discordgo.Session,
	uowFactory application.UnitOfWorkFactory,
	registry *games.Registry,
	collab common.Collaborators,
	armLocks *utils.KeyedMutex,
) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		registry:   registry,
		collab:     collab,
		armLocks:   armLocks,
	}
}

// Service builds the bounty engine over the unit of work's
// repositories. Exported because the scheduler worker drives Tick
// through it.
func (f *Feature) Service(uow application.UnitOfWork, guildID int64) interfaces.BountyService {
	ledger := services.NewLedgerService(guildID, uow.WalletRepository(), uow.InventoryRepository(), f.collab.RoleSync, uow)
	return services.NewBountyService(
		guildID,
		f.registry,
		ledger,
		uow.PotRepository(),
		uow.StatsRepository(),
		uow.GuildSettingsRepository(),
		f.collab.Notifier,
		f.armLocks,
	)
}

// currentSession returns the guild's bounty session, if any.
func (f *Feature) currentSession(guildID int64) (*games.BountySession, bool) {
	raw, ok := f.registry.Get(games.BountyKey(guildID))
	if !ok {
		return nil, false
	}
	return raw.(*games.BountySession), true
}
