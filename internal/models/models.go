package models

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender accepts MALE or FEMALE in any letter case.
func ParseGender(s string) (Gender, bool) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, true
	default:
		return "", false
	}
}

// User is the stored record. Email, Phone, Location, Bio and Post hold
// field-cipher envelopes (or "" when unset), never plaintext.
type User struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	Phone     string
	Location  string
	Bio       string
	Post      string
	Gender    Gender
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileFields is the set of mutable columns written by a profile update,
// already encrypted.
type ProfileFields struct {
	Email    string
	Phone    string
	Location string
	Bio      string
	Post     string
	Gender   Gender
}

// Profile is the decrypted view returned to the owner.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Post     string `json:"post"`
	Gender   Gender `json:"gender"`
}
