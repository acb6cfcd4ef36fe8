package common

// AuthStorageKey and CartStorageKey name the two persisted state snapshots in
// the local database. Both are removed on logout so no stale session survives.
const (
	AuthStorageKey = "auth-storage"
	CartStorageKey = "cart-store"
)

// CimageEmailDomain marks accounts that qualify for the institutional
// pricing tier.
const CimageEmailDomain = "cimage.in"
