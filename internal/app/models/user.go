package models

import "time"

// User is the account record. Password, OTP, and OTP expiry are never
// serialized into responses; read paths map to dto responses instead.
type User struct {
	ID             string     `bson:"_id,omitempty"`
	Name           string     `bson:"name"`
	Email          string     `bson:"email"`
	Phone          string     `bson:"phone"`
	Password       string     `bson:"password"`
	Role           string     `bson:"role"`
	ProfilePicture string     `bson:"profilePicture,omitempty"`
	IsVerified     bool       `bson:"isVerified"`
	OTP            string     `bson:"otp,omitempty"`
	OTPExpiry      *time.Time `bson:"otpExpiry,omitempty"`

	// Patient-only attributes, optional on the same entity.
	Gender           string `bson:"gender,omitempty"`
	DateOfBirth      string `bson:"dateOfBirth,omitempty"`
	BloodType        string `bson:"bloodType,omitempty"`
	EmergencyContact string `bson:"emergencyContact,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) IsDoctor() bool {
	return u.Role == "doctor"
}

func (u *User) IsPatient() bool {
	return u.Role == "patient"
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// HasLiveOTP reports whether the stored code is still inside its window.
func (u *User) HasLiveOTP(now time.Time) bool {
	return u.OTP != "" && u.OTPExpiry != nil && now.Before(*u.OTPExpiry)
}
