package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"giveaway_system/internal/domain" // Importing domain models
	"giveaway_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`   // First name must be provided
	LastName    string `json:"lastName" binding:"required"`    // Last name must be provided
	Email       string `json:"email" binding:"required"`       // Email must be provided
	Password    string `json:"password" binding:"required"`    // Password must be provided
	AccountType string `json:"accountType" binding:"required"` // Account type must be provided
}

// LoginRequest carries the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// ChangePasswordRequest carries the password rotation fields
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"` // Current password for verification
	NewPassword     string `json:"newPassword" binding:"required"`     // Replacement password
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	User        UserResponse `json:"user"`        // Public user fields
	AccessToken string       `json:"accessToken"` // Signed JWT
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID        uint   `json:"id"`        // User ID
	FirstName string `json:"firstName"` // First name
	LastName  string `json:"lastName"`  // Last name
	Email     string `json:"email"`     // Email address
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// isValidEmail checks the email has a plausible address shape
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isValidPassword checks the password length fits within bcrypt's input limit
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// Validate email, password and account type
		if !isValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A valid email address is required"})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be 8-72 characters"})
			return
		}
		if !domain.ValidAccountType(req.AccountType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown account type"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}
		// Store the email lowercased so uniqueness is case-insensitive
		user := domain.User{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       strings.ToLower(req.Email),
			Password:    string(hash),
			AccountType: req.AccountType,
		}
		if err := db.Create(&user).Error; err != nil {
			// Duplicate email is the usual cause
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":      user.ID,
			"account_type": user.AccountType,
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Password!"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{
			User: UserResponse{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
			},
			AccessToken: token,
		})
	}
}

// ChangePasswordHandler rotates the authenticated user's password
func ChangePasswordHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		var req ChangePasswordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		if !isValidPassword(req.NewPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be 8-72 characters"})
			return
		}
		var user domain.User // Fetch user row fresh on each call
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		// The current password must verify before anything changes
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Password!"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}
		if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Password update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update password"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("Password changed")
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully!"})
	}
}
