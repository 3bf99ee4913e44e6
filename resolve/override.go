package resolve

// Origin identifies where a variable's final eager value originated
// within the override precedence chain.
//
// The total order is fixed by design, not configurable:
//
//	OriginProfile < OriginInventory < OriginCaller < OriginCallSite
//
// For a key present in more than one source, the highest-precedence
// source's value wins outright; lower-precedence values are discarded.
type Origin string

const (
	// OriginProfile marks a value taken from the profile's own layers.
	OriginProfile Origin = "profile"
	// OriginInventory marks a value supplied by inventory-like static
	// configuration.
	OriginInventory Origin = "inventory"
	// OriginCaller marks a value supplied by caller-scope variables.
	OriginCaller Origin = "caller"
	// OriginCallSite marks a value supplied at the call site.
	OriginCallSite Origin = "callsite"
)

// Overrides carries the externally supplied override sources consulted
// during the eager merge. Each map may supply a value for any variable
// name; keys use the final exported form (prefixed when prefixing is
// enabled). Overrides never introduce variables: a key only takes effect
// when a layer defines it.
type Overrides struct {
	Inventory map[string]any
	Caller    map[string]any
	CallSite  map[string]any
}

// resolve returns the winning value and its origin for a layer-provided
// key, consulting sources from highest precedence down.
func (o Overrides) resolve(key string, layerValue any) (any, Origin) {
	if v, ok := o.CallSite[key]; ok {
		return v, OriginCallSite
	}

	if v, ok := o.Caller[key]; ok {
		return v, OriginCaller
	}

	if v, ok := o.Inventory[key]; ok {
		return v, OriginInventory
	}

	return layerValue, OriginProfile
}
