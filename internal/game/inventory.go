package game

// Inventory holds item instances carried by an entity or contained by an
// item. Keys are instance ids.
type Inventory struct {
	Objs map[string]*ItemInstance `json:"objs,omitempty"`
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		Objs: make(map[string]*ItemInstance),
	}
}

// AddObj adds an item instance to the inventory.
func (inv *Inventory) AddObj(oi *ItemInstance) {
	if inv.Objs == nil {
		inv.Objs = make(map[string]*ItemInstance)
	}
	inv.Objs[oi.InstanceId] = oi
}

// RemoveObj removes an item instance from the inventory.
// Returns the removed instance, or nil if not found.
func (inv *Inventory) RemoveObj(instanceId string) *ItemInstance {
	if oi, ok := inv.Objs[instanceId]; ok {
		delete(inv.Objs, instanceId)
		return oi
	}
	return nil
}

// Get returns an item instance by id, or nil if not found.
func (inv *Inventory) Get(instanceId string) *ItemInstance {
	return inv.Objs[instanceId]
}

// Contains checks if an item instance is in the inventory.
func (inv *Inventory) Contains(instanceId string) bool {
	_, ok := inv.Objs[instanceId]
	return ok
}

// FindObj returns the first item whose definition matches name, or nil.
func (inv *Inventory) FindObj(name string) *ItemInstance {
	if inv == nil {
		return nil
	}
	for _, oi := range inv.Objs {
		if oi.Def() != nil && oi.Def().MatchName(name) {
			return oi
		}
	}
	return nil
}

// Each visits every item in the inventory tree, descending into container
// contents.
func (inv *Inventory) Each(fn func(*ItemInstance)) {
	if inv == nil {
		return
	}
	for _, oi := range inv.Objs {
		fn(oi)
		if oi.Contents != nil {
			oi.Contents.Each(fn)
		}
	}
}

// Count returns the number of items directly in the inventory.
func (inv *Inventory) Count() int {
	if inv == nil {
		return 0
	}
	return len(inv.Objs)
}
