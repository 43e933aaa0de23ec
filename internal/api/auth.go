package api

import (
	"errors"                      // Sentinel error matching
	"mini_store/internal/service" // Account service and error taxonomy
	"mini_store/internal/session" // Workflow controller and session store
	"mini_store/internal/utils"   // JWT utility functions
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
	Role  string `json:"role"`  // Role the token carries
}

// RegisterHandler creates a regular user account
func RegisterHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Attempt to create the user; role always defaults to "user" here
		if _, err := accounts.Register(c.Request.Context(), req.Username, req.Password, ""); err != nil {
			// Duplicate usernames are rejected
			if errors.Is(err, service.ErrDuplicateUser) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			// Bad input is rejected
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
				return
			}
			// Anything else is a persistence failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates against one of the two login pages (admin or
// user) and returns a JWT token. The role must match the page: a failure for
// any reason surfaces the same generic message.
func LoginHandler(ctrl *session.Controller, sessions session.Store, jwtSecret, wantRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Run the login transition from a fresh logged-out session
		sess, err := ctrl.Login(c.Request.Context(), session.New(), req.Username, req.Password, wantRole)
		if err != nil {
			// Unknown user, wrong password and wrong role all collapse here
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			// Anything else is a persistence failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Persist the fresh session so later requests see it
		if err := sessions.Save(c.Request.Context(), sess.User.ID, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Generate JWT token carrying the identity
		token, err := utils.GenerateJWT(sess.User.ID, sess.User.Username, sess.User.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, Role: sess.User.Role})
	}
}

// LogoutHandler discards the stored session, dropping any cart with it
func LogoutHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Delete the stored session; the JWT simply expires on its own
		if err := sessions.Delete(c.Request.Context(), userID.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
