package domain

// Account types selectable at registration
const (
	AccountIndividual  = "Individual"  // Individual / influencer account
	AccountCorporation = "Corporation" // Corporation / brand account
	AccountBank        = "Bank"        // Bank / fintech account
)

// User Model
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`         // Primary key
	FirstName   string `gorm:"not null" json:"firstName"`    // First name
	LastName    string `gorm:"not null" json:"lastName"`     // Last name
	Email       string `gorm:"unique;not null" json:"email"` // Unique email address
	Password    string `gorm:"not null" json:"-"`            // Hashed password, never serialized
	AccountType string `gorm:"not null" json:"accountType"`  // One of the Account* constants
	CreatedAt   int64  `gorm:"autoCreateTime" json:"-"`      // Timestamp of registration
}

// ValidAccountType reports whether t is one of the known account kinds.
func ValidAccountType(t string) bool {
	return t == AccountIndividual || t == AccountCorporation || t == AccountBank
}
