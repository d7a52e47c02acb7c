// Package status implements the closed-set status membership check applied
// before any status update is persisted. Each entity type owns a fixed
// enumeration of valid values; any valid status may move to any other valid
// status (membership check only, no transition graph).
package status

// Value is a record lifecycle status.
type Value string

// Set is a closed enumeration of valid status values for one entity type.
type Set struct {
	values []Value
	index  map[Value]struct{}
}

// NewSet creates a closed enumeration from the given values, preserving order.
func NewSet(values ...Value) Set {
	index := make(map[Value]struct{}, len(values))
	ordered := make([]Value, 0, len(values))
	for _, v := range values {
		if _, dup := index[v]; dup {
			continue
		}
		index[v] = struct{}{}
		ordered = append(ordered, v)
	}
	return Set{values: ordered, index: index}
}

// Contains reports whether v is a member of the enumeration.
func (s Set) Contains(v Value) bool {
	_, ok := s.index[v]
	return ok
}

// Values returns the enumeration in declaration order.
func (s Set) Values() []Value {
	out := make([]Value, len(s.values))
	copy(out, s.values)
	return out
}

// Strings returns the enumeration as plain strings (for error messages).
func (s Set) Strings() []string {
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[i] = string(v)
	}
	return out
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return len(s.values) == 0 }

// Guard validates requested status values against per-entity enumerations.
type Guard struct {
	sets map[string]Set
}

// NewGuard creates a guard over the given entity → enumeration mapping.
func NewGuard(sets map[string]Set) *Guard {
	copied := make(map[string]Set, len(sets))
	for k, v := range sets {
		copied[k] = v
	}
	return &Guard{sets: copied}
}

// Validate reports whether the requested status belongs to the entity's
// enumeration. Unknown entity types validate nothing and return false.
func (g *Guard) Validate(entityType string, requested Value) bool {
	set, ok := g.sets[entityType]
	if !ok {
		return false
	}
	return set.Contains(requested)
}

// Allowed returns the enumeration for an entity type.
func (g *Guard) Allowed(entityType string) (Set, bool) {
	set, ok := g.sets[entityType]
	return set, ok
}
