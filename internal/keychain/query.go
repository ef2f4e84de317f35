package keychain

// Accessible mirrors the keychain accessibility classes the bridge uses.
type Accessible int

const (
	// AccessibleAfterFirstUnlockThisDeviceOnly entries are readable once the
	// device has been unlocked after boot and are never migrated off-device.
	AccessibleAfterFirstUnlockThisDeviceOnly Accessible = iota
	AccessibleWhenUnlockedThisDeviceOnly
)

func (a Accessible) String() string {
	switch a {
	case AccessibleWhenUnlockedThisDeviceOnly:
		return "whenUnlockedThisDeviceOnly"
	default:
		return "afterFirstUnlockThisDeviceOnly"
	}
}

// Query selects a single generic-password entry.
type Query struct {
	AccessGroup string
	Service     string
	Account     string
}

func (q Query) key() string {
	return q.AccessGroup + "\x00" + q.Service + "\x00" + q.Account
}

// Attributes describe an entry to add.
type Attributes struct {
	Query
	Data       []byte
	Accessible Accessible
}
