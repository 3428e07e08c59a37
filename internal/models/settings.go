package models

// UserSettings is the single per-user settings document. It is created
// lazily on first write; reads of an absent document return DefaultUserSettings.
type UserSettings struct {
	HasAgreedToTerms bool     `json:"hasAgreedToTerms" firestore:"hasAgreedToTerms"`
	WellWishers      []string `json:"wellWishers" firestore:"wellWishers"`
}

// DefaultUserSettings is what a user without a stored settings document sees.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		HasAgreedToTerms: false,
		WellWishers:      []string{},
	}
}
