package store

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the store calls them on hot paths.
type Hooks interface {
	// An entry was deleted by the store on read because its payload did not
	// decode. reason is currently always "value_decode".
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	SetRejected(storageKey string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string) {}
func (NopHooks) SetRejected(string)      {}
