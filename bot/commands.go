package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "wordle",
			Description: "Play solo Wordle",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a solo game in a private channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "forfeit",
					Description: "Give up on your current solo game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "snipe",
					Description: "Spend a shekel to guess someone else's word",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "target",
							Description: "Player whose game you want to snipe",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "word",
							Description: "Your five letter guess",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "wordpot",
			Description: "Stake a shekel on three guesses at the pot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Buy into the word pot",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "forfeit",
					Description: "Fold your current pot attempt",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the current pot size",
				},
			},
		},
		{
			Name:        "dungeon",
			Description: "Run a cooperative word dungeon",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a dungeon party channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "tier",
							Description: "Dungeon tier to attempt (defaults to 1)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the party before the gate locks",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lock",
					Description: "Lock the gate and start the run",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "continue",
					Description: "Vote to push on to the next room",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cashout",
					Description: "Vote to bank the loot and leave",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Abandon the run and forfeit the loot",
				},
			},
		},
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "scoreboard",
			Description: "Display the richest players",
		},
		{
			Name:        "inventory",
			Description: "Show the items you are holding",
		},
		{
			Name:        "daily",
			Description: "Once-a-day handouts",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pray",
					Description: "Pray for your daily shekels",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "beg",
					Description: "Beg for your daily stones",
				},
			},
		},
		{
			Name:        "stats",
			Description: "View player statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to check stats for (defaults to you)",
					Required:    false,
				},
			},
		},
		{
			Name:        "settings",
			Description: "Configure guild settings (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "wordle-channel",
					Description: "Set the channel for game announcements",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "The announcement channel (leave empty to disable)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bounty-channel",
					Description: "Set the channel where bounties spawn",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "The bounty channel (leave empty to disable)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "high-roller-role",
					Description: "Set the role assigned to the richest player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "The role to assign (leave empty to disable)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stone-keeper-role",
					Description: "Set the role assigned to the biggest stone holder",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "The role to assign (leave empty to disable)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "tier",
					Description: "Manage balance role tiers",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "set",
							Description: "Grant a role at a balance threshold",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionRole,
									Name:        "role",
									Description: "The role to grant",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "min_balance",
									Description: "Balance needed to earn the role",
									Required:    true,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "remove",
							Description: "Remove a balance role tier",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionRole,
									Name:        "role",
									Description: "The tier role to remove",
									Required:    true,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "List the configured balance tiers",
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
