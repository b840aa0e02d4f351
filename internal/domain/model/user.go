package model

// UserResponse is a user profile as reported by the auth service.
// The payload carries no dedicated username field; the service populates
// UserID with the username, and user-scoped endpoints key off that value.
type UserResponse struct {
	UserID         string   `json:"userId"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	Email          string   `json:"email"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
	DateOfBirth    string   `json:"dateOfBirth,omitempty"`
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	ZipCode        string   `json:"zipCode,omitempty"`
	Country        string   `json:"country,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
	Active         bool     `json:"active"`

	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// UserPreferences are per-user notification and security toggles.
type UserPreferences struct {
	NotificationEmail bool `json:"notificationEmail"`
	NotificationSms   bool `json:"notificationSms"`
	NotificationPush  bool `json:"notificationPush"`
	TwoFactorAuth     bool `json:"twoFactorAuth"`
}

// UserUpdateRequest updates mutable profile fields.
type UserUpdateRequest struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	ZipCode        string `json:"zipCode,omitempty"`
	Country        string `json:"country,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// UserCreationRequest creates a user through the admin console.
type UserCreationRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}
