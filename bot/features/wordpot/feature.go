package wordpot

import (
	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/games"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the word pot casino game: buying in, guessing in the
// private channel, and showing the current pot.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	registry   *games.Registry
	collab     common.Collaborators
}

// NewFeature creates a new word pot feature instance
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

// service builds the word pot engine over the unit of work's repositories.
func (f *Feature) service(uow application.UnitOfWork, guildID int64) interfaces.WordPotService {
	ledger := services.NewLedgerService(guildID, uow.WalletRepository(), uow.InventoryRepository(), f.collab.RoleSync, uow)
	return services.NewWordPotService(
		guildID,
		f.registry,
		ledger,
		uow.PotRepository(),
		uow.StatsRepository(),
		f.collab.Channels,
		f.collab.Notifier,
		f.collab.Definitions,
	)
}

// HandleCommand routes /wordpot subcommands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "start":
		f.handleStart(s, i)
	case "forfeit":
		f.handleForfeit(s, i)
	case "show":
		f.handleShow(s, i)
	}
}
