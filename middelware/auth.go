package middelware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"noticeboard-backend/models"
	"noticeboard-backend/utils"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles JWT token operations. Revocation is an in-memory jti
// blacklist; logging out blacklists the token until its natural expiry.
type JWTManager struct {
	Config            *models.Config
	Logger            logger.Logger
	BlacklistedTokens map[string]time.Time
	TokenMutex        sync.RWMutex
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config:            cfg,
		Logger:            log,
		BlacklistedTokens: make(map[string]time.Time),
	}
}

// GenerateToken generates a JWT token for a console account
func (j *JWTManager) GenerateToken(admin *models.Admin) (string, error) {
	claims := models.JWTClaims{
		AdminID:        admin.ID,
		Email:          admin.Email,
		Role:           admin.Role,
		OrganizationID: admin.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GenerateUUID(),
			Subject:   admin.ID,
			Issuer:    j.Config.AppName,
			Audience:  jwt.ClaimStrings{j.Config.AppName},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.Config.JWTExpiresIn)),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.Config.JWTSecret))
	if err != nil {
		j.Logger.Errorf("Failed to sign JWT token: %v", err)
		return "", err
	}

	j.Logger.Debugf("Generated JWT token for admin: %s", admin.ID)
	return tokenString, nil
}

// ValidateToken validates a JWT token and returns its claims
func (j *JWTManager) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks
		if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		} else if method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("invalid signing algorithm: %v", method.Alg())
		}
		return []byte(j.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token expired")
	}

	j.TokenMutex.RLock()
	_, revoked := j.BlacklistedTokens[claims.ID]
	j.TokenMutex.RUnlock()
	if revoked {
		return nil, fmt.Errorf("token has been revoked")
	}

	return claims, nil
}

// RevokeToken blacklists a token id until it would have expired anyway
func (j *JWTManager) RevokeToken(claims *models.JWTClaims) {
	expiry := time.Now().Add(j.Config.JWTExpiresIn)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	j.TokenMutex.Lock()
	defer j.TokenMutex.Unlock()
	j.BlacklistedTokens[claims.ID] = expiry

	// Drop entries past their expiry so the blacklist does not grow forever
	now := time.Now()
	for id, exp := range j.BlacklistedTokens {
		if exp.Before(now) {
			delete(j.BlacklistedTokens, id)
		}
	}
}

// AuthMiddleware requires a valid Bearer token and stores the claims in the
// request context under "jwt_claims".
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Authentication required",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: "Missing or malformed Authorization header",
				},
			})
			return
		}

		claims, err := j.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			j.Logger.Debugf("Token validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired token",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: err.Error(),
				},
			})
			return
		}

		c.Set("jwt_claims", claims)
		c.Set("admin_id", claims.AdminID)
		c.Next()
	}
}
