package bot

import (
	"context"
	"fmt"

	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// maxMemberFetchLimit caps the guild member page used to find current
// holders of an exclusive role.
const maxMemberFetchLimit = 1000

// roleSyncer reconciles balance-tier roles plus the two exclusive roles
// (high roller, stone keeper). It reads committed state through its own
// unit of work; the ledger queues syncs to run after the game
// transaction commits, so the read always sees the change it reacts to.
type roleSyncer struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewRoleSyncer creates a role syncer backed by the Discord session.
func NewRoleSyncer(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) interfaces.RoleSyncer {
	return &roleSyncer{
		session:    session,
		uowFactory: uowFactory,
	}
}

// SyncRoles re-evaluates the user's tier roles in the guild and
// reassigns the exclusive roles if their holder changed.
func (r *roleSyncer) SyncRoles(ctx context.Context, guildID, discordID int64) error {
	uow := r.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin role sync transaction: %w", err)
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())
	settings, err := guildSettingsService.GetOrCreateSettings(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}
	tiers, err := uow.GuildSettingsRepository().ListRoleTiers(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to list role tiers: %w", err)
	}
	wallet, err := uow.WalletRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	var richest int64
	top, err := uow.WalletRepository().GetTopBalances(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to get top balance: %w", err)
	}
	if len(top) > 0 && top[0].Balance > 0 {
		richest = top[0].DiscordID
	}

	stoneKeeper, _, err := uow.InventoryRepository().GetTopHolder(ctx, entities.ItemStone)
	if err != nil {
		return fmt.Errorf("failed to get top stone holder: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit role sync read: %w", err)
	}

	if err := r.syncTierRoles(guildID, discordID, wallet.Balance, tiers); err != nil {
		return err
	}

	if settings.HasHighRollerRole() {
		if err := r.assignExclusiveRole(guildID, *settings.HighRollerRoleID, richest); err != nil {
			log.WithError(err).WithField("guild_id", guildID).Warn("failed to reassign high roller role")
		}
	}
	if settings.HasStoneKeeperRole() {
		if err := r.assignExclusiveRole(guildID, *settings.StoneKeeperRoleID, stoneKeeper); err != nil {
			log.WithError(err).WithField("guild_id", guildID).Warn("failed to reassign stone keeper role")
		}
	}

	return nil
}

// syncTierRoles grants the member every tier their balance meets and
// removes the ones it no longer does.
func (r *roleSyncer) syncTierRoles(guildID, discordID, balance int64, tiers []*entities.RoleTier) error {
	if len(tiers) == 0 {
		return nil
	}

	guildIDStr := common.FormatUserID(guildID)
	memberIDStr := common.FormatUserID(discordID)

	member, err := r.session.GuildMember(guildIDStr, memberIDStr)
	if err != nil {
		return fmt.Errorf("failed to get guild member %d: %w", discordID, err)
	}
	held := make(map[string]bool, len(member.Roles))
	for _, roleID := range member.Roles {
		held[roleID] = true
	}

	for _, tier := range tiers {
		roleIDStr := common.FormatUserID(tier.RoleID)
		earned := balance >= tier.MinBalance

		switch {
		case earned && !held[roleIDStr]:
			if err := r.session.GuildMemberRoleAdd(guildIDStr, memberIDStr, roleIDStr); err != nil {
				log.Errorf("Failed to add tier role %d to user %d: %v", tier.RoleID, discordID, err)
			}
		case !earned && held[roleIDStr]:
			if err := r.session.GuildMemberRoleRemove(guildIDStr, memberIDStr, roleIDStr); err != nil {
				log.Errorf("Failed to remove tier role %d from user %d: %v", tier.RoleID, discordID, err)
			}
		}
	}

	return nil
}

// assignExclusiveRole makes holderID the only member with the role. A
// zero holderID just strips it from everyone.
func (r *roleSyncer) assignExclusiveRole(guildID, roleID, holderID int64) error {
	guildIDStr := common.FormatUserID(guildID)
	roleIDStr := common.FormatUserID(roleID)
	holderIDStr := common.FormatUserID(holderID)

	members, err := r.session.GuildMembers(guildIDStr, "", maxMemberFetchLimit)
	if err != nil {
		return fmt.Errorf("failed to get guild members: %w", err)
	}

	holderHasRole := false
	for _, member := range members {
		for _, memberRoleID := range member.Roles {
			if memberRoleID != roleIDStr {
				continue
			}
			if member.User.ID == holderIDStr {
				holderHasRole = true
			} else if err := r.session.GuildMemberRoleRemove(guildIDStr, member.User.ID, roleIDStr); err != nil {
				log.Errorf("Failed to remove exclusive role %d from user %s: %v", roleID, member.User.ID, err)
			}
			break
		}
	}

	if holderID != 0 && !holderHasRole {
		if err := r.session.GuildMemberRoleAdd(guildIDStr, holderIDStr, roleIDStr); err != nil {
			return fmt.Errorf("failed to add exclusive role %d to user %d: %w", roleID, holderID, err)
		}
	}

	return nil
}
