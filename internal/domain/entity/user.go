// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the single canonical account record. The email is its only identity key.
type User struct {
	Email        string     `json:"email"`      // Unique, case-sensitive identity key.
	PasswordHash string     `json:"-"`          // Opaque hash produced by the configured PasswordHasher.
	Role         Role       `json:"role"`       // Exactly one role per account.
	Profile      Profile    `json:"profile"`    // Display and contact data.
	CreatedAt    time.Time  `json:"created_at"` // Timestamp of signup or seeding.
	LastLogin    *time.Time `json:"last_login"` // Nil until the first successful login.
}

// Profile holds the user-editable part of an account.
type Profile struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	ProfileImage string `json:"profile_image"` // Encoded image supplied by the file-reading collaborator.
	Points       int    `json:"points"`        // Loyalty balance, never negative.
	Company      string `json:"company"`       // Company name for company accounts.
	Logo         string `json:"logo"`          // Encoded company logo.
}

// ProfileUpdate is a partial profile. Nil fields are left untouched on merge.
type ProfileUpdate struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	Company      *string `json:"company,omitempty"`
	Logo         *string `json:"logo,omitempty"`
}

// Apply merges the non-nil fields of the update into the profile.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.PhoneNumber != nil {
		p.PhoneNumber = *u.PhoneNumber
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.ProfileImage != nil {
		p.ProfileImage = *u.ProfileImage
	}
	if u.Company != nil {
		p.Company = *u.Company
	}
	if u.Logo != nil {
		p.Logo = *u.Logo
	}
}

// FullName joins first and last name, skipping empty parts.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// AddPoints returns the balance after applying delta, clamped at zero.
func (p Profile) AddPoints(delta int) int {
	total := p.Points + delta
	if total < 0 {
		return 0
	}

	return total
}
