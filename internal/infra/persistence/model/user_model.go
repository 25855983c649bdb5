package model

import (
	"recyclemart/internal/domain/entity"
)

// UserRecord is the stored form of one account inside the "users" map.
type UserRecord struct {
	Email     string        `json:"email"`
	Password  string        `json:"password"`
	Role      string        `json:"role"`
	Profile   ProfileRecord `json:"profile"`
	CreatedAt string        `json:"createdAt"`
	LastLogin *string       `json:"lastLogin"`
}

// ProfileRecord is the stored form of entity.Profile.
type ProfileRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	ProfileImage string `json:"profileImage"`
	Points       int    `json:"points"`
	Company      string `json:"company,omitempty"`
	Logo         string `json:"logo,omitempty"`
}

// ToUserDomain maps a stored record to the entity. The map key wins over a stale email field.
func ToUserDomain(email string, rec *UserRecord) *entity.User {
	points := rec.Profile.Points
	if points < 0 {
		points = 0
	}

	return &entity.User{
		Email:        email,
		PasswordHash: rec.Password,
		Role:         entity.Role(rec.Role),
		Profile: entity.Profile{
			FirstName:    rec.Profile.FirstName,
			LastName:     rec.Profile.LastName,
			PhoneNumber:  rec.Profile.PhoneNumber,
			Address:      rec.Profile.Address,
			ProfileImage: rec.Profile.ProfileImage,
			Points:       points,
			Company:      rec.Profile.Company,
			Logo:         rec.Profile.Logo,
		},
		CreatedAt: ParseTime(rec.CreatedAt),
		LastLogin: parseTimePtr(rec.LastLogin),
	}
}

// FromUserDomain maps the entity to its stored record.
func FromUserDomain(user *entity.User) *UserRecord {
	return &UserRecord{
		Email:    user.Email,
		Password: user.PasswordHash,
		Role:     string(user.Role),
		Profile: ProfileRecord{
			FirstName:    user.Profile.FirstName,
			LastName:     user.Profile.LastName,
			PhoneNumber:  user.Profile.PhoneNumber,
			Address:      user.Profile.Address,
			ProfileImage: user.Profile.ProfileImage,
			Points:       user.Profile.Points,
			Company:      user.Profile.Company,
			Logo:         user.Profile.Logo,
		},
		CreatedAt: FormatTime(user.CreatedAt),
		LastLogin: formatTimePtr(user.LastLogin),
	}
}
