package games

import "sync"

// Kind identifies a game type. It is part of the registry key so a solo
// game and a word pot game owned by the same user in the same channel
// cannot collide.
type Kind int

const (
	KindSolo Kind = iota
	KindWordPot
	KindBounty
	KindDungeon
)

// String returns the kind's short name.
func (k Kind) String() string {
	switch k {
	case KindSolo:
		return "solo"
	case KindWordPot:
		return "wordpot"
	case KindBounty:
		return "bounty"
	default:
		return "dungeon"
	}
}

// Key identifies an active session. Fields not relevant to a kind stay
// zero: solo and word pot use all three IDs, dungeon is channel-scoped,
// bounty is a guild-wide singleton.
type Key struct {
	Kind      Kind
	GuildID   int64
	ChannelID int64
	UserID    int64
}

// SoloKey builds the registry key for a solo game.
func SoloKey(guildID, channelID, userID int64) Key {
	return Key{Kind: KindSolo, GuildID: guildID, ChannelID: channelID, UserID: userID}
}

// WordPotKey builds the registry key for a word pot game.
func WordPotKey(guildID, channelID, userID int64) Key {
	return Key{Kind: KindWordPot, GuildID: guildID, ChannelID: channelID, UserID: userID}
}

// DungeonKey builds the registry key for a dungeon. The whole channel
// belongs to one session.
func DungeonKey(channelID int64) Key {
	return Key{Kind: KindDungeon, ChannelID: channelID}
}

// BountyKey builds the registry key for a guild's bounty singleton.
func BountyKey(guildID int64) Key {
	return Key{Kind: KindBounty, GuildID: guildID}
}

// Session is what the registry stores. ChannelID is the channel the
// session announces into, returned to callers on a start conflict so
// they can redirect the user there.
type Session interface {
	Key() Key
	ChannelID() int64
}

// Registry tracks active sessions in memory. It is owned by the
// application context and injected into the engines; sessions do not
// survive a restart.
type Registry struct {
	mu       sync.Mutex
	sessions map[Key]Session
	reserved map[Key]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[Key]Session),
		reserved: make(map[Key]struct{}),
	}
}

// ownerKey collapses a session key to its owner slot. Reservations
// cannot key on the channel because the channel does not exist yet when
// a start is reserved.
func ownerKey(kind Kind, guildID, userID int64) Key {
	return Key{Kind: kind, GuildID: guildID, UserID: userID}
}

// Reserve claims the owner's start slot for a kind before the session
// channel exists. It fails when the owner already runs a live session
// of that kind (returned so the caller can redirect there) or when
// another start holds the slot. The caller must Release the slot once
// the session is registered or the start fails.
func (r *Registry) Reserve(kind Kind, guildID, userID int64) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, held := r.reserved[ownerKey(kind, guildID, userID)]; held {
		return nil, false
	}
	for key, s := range r.sessions {
		if key.Kind == kind && key.GuildID == guildID && key.UserID == userID {
			return s, false
		}
	}
	r.reserved[ownerKey(kind, guildID, userID)] = struct{}{}
	return nil, true
}

// Release frees the owner's start slot taken by Reserve. Idempotent.
func (r *Registry) Release(kind Kind, guildID, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reserved, ownerKey(kind, guildID, userID))
}

// Start inserts the session under its key unless one is already there.
// Check and insert happen under a single lock so two near-simultaneous
// starts cannot both win. On conflict the existing session is returned
// and the new one is discarded.
func (r *Registry) Start(s Session) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[s.Key()]; ok {
		return existing, false
	}
	r.sessions[s.Key()] = s
	return s, true
}

// Get returns the session at key, if any.
func (r *Registry) Get(key Key) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[key]
	return s, ok
}

// End removes the session at key. Idempotent: win, fail, and external
// cleanup paths may all race to remove the same key.
func (r *Registry) End(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, key)
}

// ForGuild returns every session belonging to a guild. Used by the
// scheduler and for shutdown sweeps.
func (r *Registry) ForGuild(guildID int64) []Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Session
	for _, s := range r.sessions {
		if s.Key().GuildID == guildID {
			out = append(out, s)
		}
	}
	return out
}

// FindSoloByOwner returns the active solo session a user owns anywhere
// in the guild, if any. Snipes target a player, not a channel.
func (r *Registry) FindSoloByOwner(guildID, userID int64) (*SoloSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, s := range r.sessions {
		if key.Kind == KindSolo && key.GuildID == guildID && key.UserID == userID {
			return s.(*SoloSession), true
		}
	}
	return nil, false
}
