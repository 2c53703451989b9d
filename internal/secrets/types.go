package secrets

import "fmt"

// Tier describes one user tier in the benchmark population.
type Tier struct {
	// Name is the tier prefix used in user ids ("free", "premium")
	Name string

	// Count is the number of users to generate for this tier
	Count int

	// Description is embedded as a human-readable annotation
	Description string
}

// DefaultTiers returns the benchmark tier table: 250 free users
// followed by 250 premium users. Order matters, it fixes the document
// order in the generated manifest.
func DefaultTiers() []Tier {
	return []Tier{
		{
			Name:        "free",
			Count:       250,
			Description: "Free tier user with limited rate limits",
		},
		{
			Name:        "premium",
			Count:       250,
			Description: "Premium tier user with higher rate limits",
		},
	}
}

// UserRecord is one synthetic benchmark user.
type UserRecord struct {
	Tier   string
	Index  int
	UserID string
	APIKey string
}

// NewUserRecord derives a user record from a tier name and a 1-based
// index. The api key is derived from the user id by convention; the
// maas-k6.js load script reconstructs it the same way.
func NewUserRecord(tier string, index int) UserRecord {
	userID := fmt.Sprintf("%suser%d", tier, index)
	return UserRecord{
		Tier:   tier,
		Index:  index,
		UserID: userID,
		APIKey: userID + "_key",
	}
}

// SecretName returns the metadata.name for the user's Secret.
func (r UserRecord) SecretName() string {
	return r.UserID + "-apikey"
}
