package bot

import (
	"context"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// StartBountyScheduler starts the background worker driving the bounty
// lifecycle. Each pass ticks every known guild once, spawning bounties
// whose spawn time has arrived and expiring ones past their deadline.
// Returns a cleanup function to stop the worker gracefully.
func (b *Bot) StartBountyScheduler(ctx context.Context, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	stopChan := make(chan struct{})

	tickGuilds := func() {
		for _, guild := range b.session.State.Guilds {
			guildID, err := strconv.ParseInt(guild.ID, 10, 64)
			if err != nil {
				log.Errorf("Error parsing guild ID %s: %v", guild.ID, err)
				continue
			}

			uow := b.uowFactory.CreateForGuild(guildID)
			if err := uow.Begin(context.Background()); err != nil {
				log.Errorf("Error beginning bounty tick transaction for guild %d: %v", guildID, err)
				continue
			}

			if err := b.bounty.Service(uow, guildID).Tick(context.Background()); err != nil {
				log.Errorf("Error ticking bounty for guild %d: %v", guildID, err)
				uow.Rollback()
				continue
			}

			if err := uow.Commit(); err != nil {
				log.Errorf("Error committing bounty tick transaction for guild %d: %v", guildID, err)
			}
		}
	}

	go func() {
		log.Info("Bounty scheduler started")

		for {
			select {
			case <-ctx.Done():
				log.Info("Bounty scheduler shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Bounty scheduler shutting down (stop requested)...")
				return
			case <-ticker.C:
				tickGuilds()
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(stopChan)
	}
}
