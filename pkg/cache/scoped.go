package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation. A
// server hosting layouts for several users gives each a separate cache
// namespace:
//
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed key for an engine computation result.
func (k *ScopedKeyer) ResultKey(layoutHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(layoutHash, opts)
}
