package storage

// Fixed snapshot keys, one per persisted store.
const (
	AuthKey     = "auth-storage"
	CartKey     = "cart-storage"
	WishlistKey = "wishlist-storage"
)

// Store persists whole state snapshots under fixed string keys.
// Stores rehydrate from it at startup and write back on every
// mutation; implementations must tolerate concurrent callers.
type Store interface {
	// Load unmarshals the snapshot saved under key into into. The
	// boolean reports whether a snapshot existed.
	Load(key string, into interface{}) (bool, error)
	Save(key string, snapshot interface{}) error
	Delete(key string) error
	Close() error
}
