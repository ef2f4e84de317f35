// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the bridge components from one configuration and holds
// the messages the command line prints.
//
// All Msg* constants are human-readable strings written to stdout or log
// entries to describe the outcome of an operation. Keeping them in one
// place keeps the wording consistent across commands.
package app

const (
	// MsgSyncOn is printed when the shared key is present.
	MsgSyncOn = "sync is on"

	// MsgSyncOff is printed when no shared key has been provisioned.
	MsgSyncOff = "sync is off"

	// MsgKeyGenerated is printed after a fresh shared key was stored.
	MsgKeyGenerated = "authenticator key generated"

	// MsgKeyStored is printed after an operator-supplied key was stored.
	MsgKeyStored = "authenticator key stored"

	// MsgKeyDeleted is printed after the shared key was removed.
	MsgKeyDeleted = "authenticator key deleted"

	// MsgKeyAlreadyPresent is returned by key init when a key exists and
	// --force was not given.
	MsgKeyAlreadyPresent = "authenticator key already present"

	// MsgNoUserIDProvided is returned when a per-account command runs
	// without --user-id.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgNoTemporaryItem is printed when temp pop finds nothing parked.
	MsgNoTemporaryItem = "no temporary item"

	// MsgClipboardUnavailable is written to stderr when temp pop --copy
	// cannot reach the clipboard and prints the secret instead.
	MsgClipboardUnavailable = "clipboard unavailable, TOTP secret printed"

	// MsgNoVaultFile is returned when watch runs without --vault-file.
	MsgNoVaultFile = "no vault file configured"
)
