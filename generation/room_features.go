package generation

// ChestState is the loot stored in a chest room. The generator never
// looks inside; gameplay code fills and empties it.
type ChestState struct {
	ItemIDs []string
	Opened  bool
}

// ShopState is the stock of a shop room
type ShopState struct {
	Stock  map[string]int
	Prices map[string]int
}

// ForgeState tracks a forge room's upgrade station
type ForgeState struct {
	UsesLeft int
}

// A room may host any combination of chest, shop and forge; the three
// are independent.

// AttachChest binds chest state to the room, replacing any previous one
func (r *Room) AttachChest(chest *ChestState) { r.chest = chest }

// DetachChest removes the room's chest state
func (r *Room) DetachChest() { r.chest = nil }

// Chest returns the room's chest state, if any
func (r *Room) Chest() (*ChestState, bool) { return r.chest, r.chest != nil }

// AttachShop binds shop state to the room
func (r *Room) AttachShop(shop *ShopState) { r.shop = shop }

// DetachShop removes the room's shop state
func (r *Room) DetachShop() { r.shop = nil }

// Shop returns the room's shop state, if any
func (r *Room) Shop() (*ShopState, bool) { return r.shop, r.shop != nil }

// AttachForge binds forge state to the room
func (r *Room) AttachForge(forge *ForgeState) { r.forge = forge }

// DetachForge removes the room's forge state
func (r *Room) DetachForge() { r.forge = nil }

// Forge returns the room's forge state, if any
func (r *Room) Forge() (*ForgeState, bool) { return r.forge, r.forge != nil }
