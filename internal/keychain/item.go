package keychain

import (
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type itemKind int

const (
	kindAuthenticatorKey itemKind = iota
	kindLastActiveTime
	kindVaultTimeout
	kindAccountAutoLogout
)

// SharedKeychainItem addresses one value in the shared keychain.
type SharedKeychainItem struct {
	kind   itemKind
	app    models.SharedTimeoutApplication
	userID string
}

// AuthenticatorKeyItem is the symmetric key that seals every shared item.
func AuthenticatorKeyItem() SharedKeychainItem {
	return SharedKeychainItem{kind: kindAuthenticatorKey}
}

// LastActiveTimeItem is the last time app was active for userID.
func LastActiveTimeItem(app models.SharedTimeoutApplication, userID string) SharedKeychainItem {
	return SharedKeychainItem{kind: kindLastActiveTime, app: app, userID: userID}
}

// VaultTimeoutItem is the vault timeout app applies to userID.
func VaultTimeoutItem(app models.SharedTimeoutApplication, userID string) SharedKeychainItem {
	return SharedKeychainItem{kind: kindVaultTimeout, app: app, userID: userID}
}

// AccountAutoLogoutItem flags userID for logout instead of lock on timeout.
func AccountAutoLogoutItem(userID string) SharedKeychainItem {
	return SharedKeychainItem{kind: kindAccountAutoLogout, userID: userID}
}

// UnformattedKey is the account attribute the item is stored under.
func (i SharedKeychainItem) UnformattedKey() string {
	switch i.kind {
	case kindLastActiveTime:
		return fmt.Sprintf("lastActiveTime_%s_%s", i.app, i.userID)
	case kindVaultTimeout:
		return fmt.Sprintf("vaultTimeout_%s_%s", i.app, i.userID)
	case kindAccountAutoLogout:
		return fmt.Sprintf("accountAutoLogout_%s", i.userID)
	default:
		return "authenticatorKey"
	}
}

func (i SharedKeychainItem) String() string {
	return i.UnformattedKey()
}
