package entities

import "fmt"

// ItemKind identifies a stackable inventory item.
type ItemKind string

const (
	// ItemStone is the dungeon loot collectible.
	ItemStone ItemKind = "stone"
	// ItemChicken is the temporary protection currency.
	ItemChicken ItemKind = "chicken"
	// ItemSniperBadge is awarded for a successful snipe.
	ItemSniperBadge ItemKind = "sniper_badge"
	// ItemTicketT1 through ItemTicketT3 are dungeon entry tickets by tier.
	ItemTicketT1 ItemKind = "ticket_t1"
	ItemTicketT2 ItemKind = "ticket_t2"
	ItemTicketT3 ItemKind = "ticket_t3"
)

// DisplayName returns the bag-listing name of the item.
func (k ItemKind) DisplayName() string {
	switch k {
	case ItemStone:
		return "Stone"
	case ItemChicken:
		return "Fried Chicken"
	case ItemSniperBadge:
		return "Sniper Badge"
	case ItemTicketT1:
		return "Dungeon Ticket (tier 1)"
	case ItemTicketT2:
		return "Dungeon Ticket (tier 2)"
	case ItemTicketT3:
		return "Dungeon Ticket (tier 3)"
	default:
		return string(k)
	}
}

// TicketForTier maps a dungeon tier to its ticket item.
func TicketForTier(tier int) (ItemKind, error) {
	switch tier {
	case 1:
		return ItemTicketT1, nil
	case 2:
		return ItemTicketT2, nil
	case 3:
		return ItemTicketT3, nil
	default:
		return "", fmt.Errorf("no ticket for dungeon tier %d", tier)
	}
}

// InventoryItem is one item stack owned by a user within a guild.
type InventoryItem struct {
	GuildID   int64    `db:"guild_id"`
	DiscordID int64    `db:"discord_id"`
	Kind      ItemKind `db:"kind"`
	Quantity  int64    `db:"quantity"`
}
