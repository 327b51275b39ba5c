package stealth

import "errors"

// ErrNullKey is returned when a derivation-adjacent method is called on a
// MutableKey or PubKey that was never populated with both halves. Per
// spec.md §4.4, a mutable key has no intermediate "half set" state — it is
// either null or fully populated — so this is always a usage error.
var ErrNullKey = errors.New("stealth: mutable key is not populated")
