package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/bot/features/balance"
	"wordleworld/bot/features/bounty"
	"wordleworld/bot/features/daily"
	"wordleworld/bot/features/dungeon"
	"wordleworld/bot/features/settings"
	"wordleworld/bot/features/solo"
	"wordleworld/bot/features/stats"
	"wordleworld/bot/features/wordpot"
	"wordleworld/domain/games"
	"wordleworld/domain/services"
	"wordleworld/domain/utils"
	"wordleworld/infrastructure"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token                string
	DictionaryAPIBaseURL string
	SchedulerInterval    time.Duration
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	// Core components
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory

	// Shared game state
	registry *games.Registry
	armLocks *utils.KeyedMutex
	collab   common.Collaborators

	// Feature modules
	solo     *solo.Feature
	wordpot  *wordpot.Feature
	dungeon  *dungeon.Feature
	bounty   *bounty.Feature
	balance  *balance.Feature
	daily    *daily.Feature
	stats    *stats.Feature
	settings *settings.Feature

	// Worker cleanup functions
	stopBountyScheduler func()
}

// New creates a new bot instance with all features
func New(config Config, uowFactory application.UnitOfWorkFactory) (*Bot, error) {
	// Create Discord session
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAllWithoutPrivileged |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	// Create shared components
	collab := common.Collaborators{
		Channels:    NewChannelManager(dg),
		Notifier:    NewNotifier(dg, uowFactory),
		Renderer:    NewBoardRenderer(),
		Definitions: infrastructure.NewDictionaryClient(config.DictionaryAPIBaseURL),
		RoleSync:    NewRoleSyncer(dg, uowFactory),
	}
	registry := games.NewRegistry()
	armLocks := utils.NewKeyedMutex()

	// Create bot instance
	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
		registry:   registry,
		armLocks:   armLocks,
		collab:     collab,
	}

	// Create feature modules
	bot.solo = solo.NewFeature(dg, uowFactory, registry, collab)
	bot.wordpot = wordpot.NewFeature(dg, uowFactory, registry, collab)
	bot.dungeon = dungeon.NewFeature(dg, uowFactory, registry, collab)
	bot.bounty = bounty.NewFeature(dg, uowFactory, registry, collab, armLocks)
	bot.balance = balance.NewFeature(dg, uowFactory, collab)
	bot.daily = daily.NewFeature(dg, uowFactory, collab)
	bot.stats = stats.NewFeature(dg, uowFactory)
	bot.settings = settings.NewFeature(dg, uowFactory)

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleReactionAdd)
	dg.AddHandler(bot.handleReactionRemove)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Start background workers
	ctx := context.Background()
	bot.stopBountyScheduler = bot.StartBountyScheduler(ctx, config.SchedulerInterval)
	log.Info("Background workers started")

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.stopBountyScheduler != nil {
		b.stopBountyScheduler()
	}
	log.Info("Background workers stopped")

	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "wordle":
		b.solo.HandleCommand(s, i)
	case "wordpot":
		b.wordpot.HandleCommand(s, i)
	case "dungeon":
		b.dungeon.HandleCommand(s, i)
	case "balance":
		b.balance.HandleBalance(s, i)
	case "scoreboard":
		b.balance.HandleScoreboard(s, i)
	case "inventory":
		b.balance.HandleInventory(s, i)
	case "daily":
		b.daily.HandleCommand(s, i)
	case "stats":
		b.stats.HandleCommand(s, i)
	case "settings":
		b.settings.HandleCommand(s, i)
	}
}

// handleGuildCreate handles when the bot joins a new guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(
		uow.GuildSettingsRepository(),
	)

	guildSettings, err := guildSettingsService.GetOrCreateSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to track new guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Failed to commit transaction: %v", err)
		return
	}

	log.Infof("Bot joined guild: %s (ID: %d, Wordle Channel: %v, Bounty Channel: %v)",
		g.Name, guildSettings.GuildID, guildSettings.WordleChannelID, guildSettings.BountyChannelID)
}

// handleMessageCreate routes guesses typed into game channels. A
// message only reaches a feature when the channel maps to a live
// session in the registry, so casual chat costs one registry lookup.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Skip our own messages and other bots to avoid loops
	if m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	// Skip if message is not from a guild
	if m.GuildID == "" {
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}
	channelID, err := strconv.ParseInt(m.ChannelID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse channel ID %s: %v", m.ChannelID, err)
		return
	}
	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", m.Author.ID, err)
		return
	}

	if session, ok := b.registry.Get(games.SoloKey(guildID, channelID, userID)); ok {
		b.solo.HandleMessage(s, m, session.(*games.SoloSession))
		return
	}
	if session, ok := b.registry.Get(games.WordPotKey(guildID, channelID, userID)); ok {
		b.wordpot.HandleMessage(s, m, session.(*games.WordPotSession))
		return
	}
	if session, ok := b.registry.Get(games.DungeonKey(channelID)); ok {
		b.dungeon.HandleMessage(s, m, session.(*games.DungeonSession))
		return
	}
	if b.bounty.IsBountyChannel(guildID, m.ChannelID) {
		b.bounty.HandleMessage(s, m)
	}
}

// handleReactionAdd forwards reactions to the features that listen for
// them: the bounty arms on swords, the dungeon runs its join gate and
// round decisions on its channel's reactions.
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	b.bounty.HandleReactionAdd(s, r)
	b.dungeon.HandleReactionAdd(s, r)
}

// handleReactionRemove keeps the arm count honest when a sword is
// taken back.
func (b *Bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	b.bounty.HandleReactionRemove(s, r)
}
