package domain

import "time"

// Token lifetime policy. Expiry is enforced lazily at lookup time;
// there is no background cleanup job.
const (
	VerificationTokenTTL = 24 * time.Hour
	ResetTokenTTL        = 1 * time.Hour
	SessionTTL           = 7 * 24 * time.Hour
)
