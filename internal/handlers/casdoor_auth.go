package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/services"
)

// CasdoorAuthMiddleware provides authentication using the identity provider.
// Each request's bearer token is validated, the asserted identity is run
// through role resolution, and the resulting profile (with its effective
// role) is placed in the request context. Requests without a valid token
// proceed as guests only on routes that use OptionalAuthMiddleware.
type CasdoorAuthMiddleware struct {
	identityRepo repositories.IdentityRepository
	authService  services.AuthService
}

// NewCasdoorAuthMiddleware creates a new authentication middleware
func NewCasdoorAuthMiddleware(identityRepo repositories.IdentityRepository, authService services.AuthService) *CasdoorAuthMiddleware {
	return &CasdoorAuthMiddleware{
		identityRepo: identityRepo,
		authService:  authService,
	}
}

// AuthMiddleware returns a Gin middleware function that requires a valid token
func (cam *CasdoorAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "authorization header missing or malformed",
			})
			c.Abort()
			return
		}

		profile, err := cam.resolveProfile(c, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: fmt.Sprintf("invalid token: %v", err),
			})
			c.Abort()
			return
		}

		setUserContext(c, profile)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a token is present and
// continues as guest otherwise. Catalog routes use this: anonymous
// visitors can browse, they just see locked items without file URLs.
func (cam *CasdoorAuthMiddleware) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		profile, err := cam.resolveProfile(c, token)
		if err != nil {
			// Invalid token, continue as guest
			c.Next()
			return
		}

		setUserContext(c, profile)
		c.Next()
	}
}

// RequireRoleMiddleware checks if the resolved role is sufficient.
// Admins pass every check.
func (cam *CasdoorAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "forbidden",
				Message: "user role not found in context",
			})
			c.Abort()
			return
		}

		role, ok := userRole.(models.UserRole)
		if !ok {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "forbidden",
				Message: "invalid user role format",
			})
			c.Abort()
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole || role == models.RoleAdmin {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "forbidden",
				Message: fmt.Sprintf("insufficient permissions, required role: %v", requiredRoles),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// resolveProfile validates the token and runs role resolution, writing
// the resolved role back to the profile record.
func (cam *CasdoorAuthMiddleware) resolveProfile(c *gin.Context, token string) (*models.UserProfile, error) {
	identity, err := cam.identityRepo.ParseToken(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	return cam.authService.ResolveIdentity(c.Request.Context(), identity)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

func setUserContext(c *gin.Context, profile *models.UserProfile) {
	c.Set("user_uid", profile.UID)
	c.Set("user", profile)
	c.Set("user_role", profile.Role)
	c.Set("user_email", profile.Email)
}

// GetUserFromContext extracts the resolved profile from Gin context
func GetUserFromContext(c *gin.Context) (*models.UserProfile, error) {
	user, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("user not found in context")
	}

	profile, ok := user.(*models.UserProfile)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}

	return profile, nil
}

// GetUserUIDFromContext extracts the viewer's UID from Gin context
func GetUserUIDFromContext(c *gin.Context) (string, error) {
	uid, exists := c.Get("user_uid")
	if !exists {
		return "", fmt.Errorf("user UID not found in context")
	}

	id, ok := uid.(string)
	if !ok {
		return "", fmt.Errorf("invalid user UID type in context")
	}

	return id, nil
}

// IsAuthenticated reports whether the request carries a resolved profile.
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("user")
	return exists
}
