package models

import "time"

// ProviderProfile carries the provider-specific attributes of a user
// with the provider role. Categories is the set of trades the provider
// is willing to serve; an empty set is valid and simply matches nothing.
type ProviderProfile struct {
	UserID      string            `bson:"user_id" json:"userId"`
	Categories  []ServiceCategory `bson:"categories" json:"categories"`
	Bio         string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills      string            `bson:"skills,omitempty" json:"skills,omitempty"`
	ServiceArea string            `bson:"service_area,omitempty" json:"serviceArea,omitempty"`
	HourlyRate  float64           `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"`
	Available   bool              `bson:"available" json:"available"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}

// ProviderProfileUpdate is the input for editing a provider profile.
// Nil fields are left untouched.
type ProviderProfileUpdate struct {
	Categories  *[]ServiceCategory `json:"categories"`
	Bio         *string            `json:"bio"`
	Skills      *string            `json:"skills"`
	ServiceArea *string            `json:"serviceArea"`
	HourlyRate  *float64           `json:"hourlyRate"`
	Available   *bool              `json:"available"`
}
