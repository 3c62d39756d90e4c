package entity

// InstanceRegistry is the ordered keyed collection of open tool instances.
// Order is insertion order; it is the source of truth for what is open,
// pinned, active and connected. The registry is not safe for concurrent use;
// its owner serialises access.
type InstanceRegistry struct {
	order     []InstanceID
	instances map[InstanceID]*OpenToolInstance
	ActiveID  InstanceID
}

// NewInstanceRegistry creates an empty registry.
func NewInstanceRegistry() *InstanceRegistry {
	return &InstanceRegistry{
		order:     make([]InstanceID, 0),
		instances: make(map[InstanceID]*OpenToolInstance),
	}
}

// Add appends an instance. It returns false if the id is already registered.
func (r *InstanceRegistry) Add(inst *OpenToolInstance) bool {
	if inst == nil || inst.InstanceID == "" {
		return false
	}
	if _, exists := r.instances[inst.InstanceID]; exists {
		return false
	}
	r.order = append(r.order, inst.InstanceID)
	r.instances[inst.InstanceID] = inst
	return true
}

// Remove deletes an instance. If it was active, the most recently inserted
// remaining instance becomes active, or none when the registry is empty.
func (r *InstanceRegistry) Remove(id InstanceID) bool {
	if _, exists := r.instances[id]; !exists {
		return false
	}
	delete(r.instances, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.ActiveID == id {
		r.ActiveID = r.Last()
	}
	return true
}

// Find returns an instance by id, or nil.
func (r *InstanceRegistry) Find(id InstanceID) *OpenToolInstance {
	return r.instances[id]
}

// Has reports whether id is registered.
func (r *InstanceRegistry) Has(id InstanceID) bool {
	_, ok := r.instances[id]
	return ok
}

// Active returns the active instance, or nil.
func (r *InstanceRegistry) Active() *OpenToolInstance {
	return r.Find(r.ActiveID)
}

// SetActive marks id as active. Unknown ids are ignored.
func (r *InstanceRegistry) SetActive(id InstanceID) bool {
	if !r.Has(id) {
		return false
	}
	r.ActiveID = id
	return true
}

// Keys returns instance ids in insertion order.
func (r *InstanceRegistry) Keys() []InstanceID {
	keys := make([]InstanceID, len(r.order))
	copy(keys, r.order)
	return keys
}

// Instances returns instances in insertion order.
func (r *InstanceRegistry) Instances() []*OpenToolInstance {
	out := make([]*OpenToolInstance, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.instances[id])
	}
	return out
}

// Count returns the number of open instances.
func (r *InstanceRegistry) Count() int {
	return len(r.order)
}

// Last returns the most recently inserted instance id, or "".
func (r *InstanceRegistry) Last() InstanceID {
	if len(r.order) == 0 {
		return ""
	}
	return r.order[len(r.order)-1]
}

// Next returns the id direction steps away from the active instance,
// wrapping around. direction: 1 for next, -1 for previous.
func (r *InstanceRegistry) Next(direction int) InstanceID {
	n := len(r.order)
	if n == 0 {
		return ""
	}
	current := -1
	for i, id := range r.order {
		if id == r.ActiveID {
			current = i
			break
		}
	}
	if current < 0 {
		return r.order[0]
	}
	pos := ((current+direction)%n + n) % n
	return r.order[pos]
}

// CountByTool returns how many instances of toolID are open.
func (r *InstanceRegistry) CountByTool(toolID ToolID) int {
	count := 0
	for _, id := range r.order {
		if r.instances[id].ToolID == toolID {
			count++
		}
	}
	return count
}

// NextDisplayNumber returns the lowest display number not used by an open
// instance of toolID.
func (r *InstanceRegistry) NextDisplayNumber(toolID ToolID) int {
	used := make(map[int]bool)
	for _, id := range r.order {
		inst := r.instances[id]
		if inst.ToolID == toolID {
			used[inst.DisplayNumber] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return n
}

// Clear removes every instance and the active id.
func (r *InstanceRegistry) Clear() {
	r.order = r.order[:0]
	r.instances = make(map[InstanceID]*OpenToolInstance)
	r.ActiveID = ""
}
