package event

// Verdict is the decision returned to the host from registration screening.
type Verdict string

const (
	Allow     Verdict = "allow"
	Deny      Verdict = "deny"
	ShadowBan Verdict = "shadow_ban"
)

// Email describes the third-party identifier attached to a registration
// attempt, when one was provided.
type Email struct {
	Medium  string
	Address string
}

// RegistrationAttempt is fired while an account creation is in progress.
// The account does not exist yet; every field may be absent (zero value or
// nil) on early-stage probes.
type RegistrationAttempt struct {
	Email          *Email
	Username       string
	SourceIP       string
	AuthProviderID string
}

// AccountCreated is fired once per successful registration and carries the
// fully qualified account identifier.
type AccountCreated struct {
	UserID string
}
