package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/mattgaskey/brewblog-api/configs"
)

// ClaimsKey is the gin context key under which verified claims are stored.
const ClaimsKey = "claims"

// Error is a structured authentication or authorization failure. It is
// rendered at the routing boundary as {code, description} with Status.
type Error struct {
	Code        string
	Description string
	Status      int
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Description
}

type Manager struct {
	conf   *configs.Config
	keys   KeyProvider
	logger *zap.Logger
}

func NewManager(conf *configs.Config, keys KeyProvider, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, keys: keys, logger: logger}
}

// RequirePermission guards a handler behind token extraction, verification and
// a single permission check. Any failure aborts the request with the error's
// own status; the handler never runs.
func (m *Manager) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, authErr := m.ExtractToken(c.Request.Header)
		if authErr != nil {
			abortWithAuthError(c, authErr)

			return
		}

		claims, authErr := m.Verify(c.Request.Context(), token)
		if authErr != nil {
			m.logger.Error("token verification failed", zap.String("code", authErr.Code))
			abortWithAuthError(c, authErr)

			return
		}

		if authErr := CheckPermissions(permission, claims); authErr != nil {
			abortWithAuthError(c, authErr)

			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func abortWithAuthError(c *gin.Context, authErr *Error) {
	c.AbortWithStatusJSON(authErr.Status, gin.H{
		"code":        authErr.Code,
		"description": authErr.Description,
	})
}

// ExtractToken pulls the bearer token out of the Authorization header. The
// header must hold exactly two space-separated parts and the scheme must be
// "Bearer", case-insensitively.
func (m *Manager) ExtractToken(header http.Header) (string, *Error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", &Error{
			Code:        "authorization_header_missing",
			Description: "Authorization header is expected.",
			Status:      http.StatusUnauthorized,
		}
	}

	parts := strings.Fields(authorization)

	if len(parts) == 0 || !strings.EqualFold(parts[0], "bearer") {
		return "", &Error{
			Code:        "invalid_header",
			Description: `Authorization header must start with "Bearer".`,
			Status:      http.StatusUnauthorized,
		}
	}

	if len(parts) == 1 {
		return "", &Error{
			Code:        "invalid_header",
			Description: "Token not found.",
			Status:      http.StatusUnauthorized,
		}
	}

	if len(parts) > 2 {
		return "", &Error{
			Code:        "invalid_header",
			Description: "Authorization header must be bearer token.",
			Status:      http.StatusUnauthorized,
		}
	}

	return parts[1], nil
}

// Verify checks the token signature against the resolved signing key and
// validates the registered claims. Verification is all-or-nothing: the claims
// are returned only when every check passes.
func (m *Manager) Verify(ctx context.Context, token string) (jwt.MapClaims, *Error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		keyID, found := t.Header["kid"].(string)
		if !found {
			return nil, &Error{
				Code:        "invalid_header",
				Description: "Authorization malformed.",
				Status:      http.StatusUnauthorized,
			}
		}

		key, err := m.keys.ResolveKey(ctx, keyID)
		if err != nil {
			if errors.Is(err, ErrKeyNotFound) {
				return nil, &Error{
					Code:        "invalid_header",
					Description: "Unable to find the appropriate key.",
					Status:      http.StatusBadRequest,
				}
			}

			return nil, err
		}

		return key, nil
	}

	options := []jwt.ParserOption{jwt.WithValidMethods(m.conf.Auth.Algorithms)}
	if !m.conf.Auth.TestMode {
		options = append(options,
			jwt.WithAudience(m.conf.Auth.Audience),
			jwt.WithIssuer("https://"+m.conf.Auth.Domain+"/"))
	}

	parser := jwt.NewParser(options...)

	parsed, err := parser.Parse(token, keyFunc)
	if err != nil {
		return nil, m.mapTokenError(err)
	}

	claims, found := parsed.Claims.(jwt.MapClaims)
	if !found || !parsed.Valid {
		return nil, &Error{
			Code:        "invalid_header",
			Description: "Unable to parse authentication token.",
			Status:      http.StatusUnauthorized,
		}
	}

	return claims, nil
}

func (m *Manager) mapTokenError(err error) *Error {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &Error{
			Code:        "token_expired",
			Description: "Token is expired.",
			Status:      http.StatusUnauthorized,
		}
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return &Error{
			Code:        "invalid_claims",
			Description: "Incorrect claims. Please, check the audience and issuer.",
			Status:      http.StatusUnauthorized,
		}
	default:
		return &Error{
			Code:        "invalid_header",
			Description: "Unable to parse authentication token.",
			Status:      http.StatusUnauthorized,
		}
	}
}

// CheckPermissions verifies membership of the required permission string in
// the claims' permissions list. A claim set with no permissions field at all
// is a structural problem with the token, not a denial.
func CheckPermissions(permission string, claims jwt.MapClaims) *Error {
	raw, found := claims["permissions"]
	if !found {
		return &Error{
			Code:        "invalid_claims",
			Description: "Permissions not included in JWT.",
			Status:      http.StatusBadRequest,
		}
	}

	permissions, found := raw.([]interface{})
	if !found {
		return &Error{
			Code:        "invalid_claims",
			Description: "Permissions not included in JWT.",
			Status:      http.StatusBadRequest,
		}
	}

	for _, p := range permissions {
		if name, ok := p.(string); ok && name == permission {
			return nil
		}
	}

	return &Error{
		Code:        "unauthorized",
		Description: "Permission not found.",
		Status:      http.StatusForbidden,
	}
}
