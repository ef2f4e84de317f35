package models

// SharedTimeoutApplication names the app a shared timeout value belongs to.
type SharedTimeoutApplication string

const (
	ApplicationAuthenticator   SharedTimeoutApplication = "authenticator"
	ApplicationPasswordManager SharedTimeoutApplication = "passwordManager"
)

// SessionTimeoutValue is a vault timeout in minutes. Negative values are
// named policies rather than durations.
type SessionTimeoutValue int

const (
	Immediately    SessionTimeoutValue = 0
	OneMinute      SessionTimeoutValue = 1
	FiveMinutes    SessionTimeoutValue = 5
	FifteenMinutes SessionTimeoutValue = 15
	ThirtyMinutes  SessionTimeoutValue = 30
	OneHour        SessionTimeoutValue = 60
	FourHours      SessionTimeoutValue = 240
	OnAppRestart   SessionTimeoutValue = -1
	Never          SessionTimeoutValue = -2
)
