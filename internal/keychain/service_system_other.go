//go:build !darwin

package keychain

// NewSystemKeychainService fails outside darwin: there is no OS keychain to
// share between processes. Use the file backend instead.
func NewSystemKeychainService() (KeychainService, error) {
	return nil, ErrBackendUnavailable
}
