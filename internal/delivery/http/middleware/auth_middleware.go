package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/jwt"
	"healthcare-management-system/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserKey    contextKey = "user"
	TokenIDKey contextKey = "token_id"
)

// Authenticator resolves a session token to its live user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, *jwt.Claims, error)
}

// Gate describes who may pass and how a missing token is reported
type Gate struct {
	Roles          []entity.Role
	MissingStatus  int
	MissingMessage string
	// Bearer also accepts an Authorization header
	Bearer bool
}

var (
	PatientGate = Gate{
		Roles:          []entity.Role{entity.RolePatient},
		MissingStatus:  http.StatusBadRequest,
		MissingMessage: "Patient Not Authenticated",
		Bearer:         true,
	}
	DoctorGate = Gate{
		Roles:          []entity.Role{entity.RoleDoctor},
		MissingStatus:  http.StatusBadRequest,
		MissingMessage: "Doctor Not Authenticated",
	}
	AdminGate = Gate{
		Roles:          []entity.Role{entity.RoleAdmin},
		MissingStatus:  http.StatusBadRequest,
		MissingMessage: "Dashboard User is not authenticated!",
	}
	AdminOrDoctorGate = Gate{
		Roles:          []entity.Role{entity.RoleAdmin, entity.RoleDoctor},
		MissingStatus:  http.StatusBadRequest,
		MissingMessage: "User Not Authenticated",
	}
	AnyGate = Gate{
		Roles:          []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient},
		MissingStatus:  http.StatusUnauthorized,
		MissingMessage: "Please Login To Access!",
		Bearer:         true,
	}
)

type AuthMiddleware struct {
	auth Authenticator
	log  *logrus.Logger
}

func NewAuthMiddleware(auth Authenticator, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
		log:  log,
	}
}

// Require verifies the session token for gate and stores the user in the
// request context.
func (m *AuthMiddleware) Require(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFor(r, gate)
			if token == "" {
				response.Error(w, gate.MissingStatus, gate.MissingMessage, nil)
				return
			}

			user, claims, err := m.auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, usecase.ErrInvalidToken) {
					response.Unauthorized(w, "Invalid Token! Please login again.")
					return
				}
				m.log.Warnf("Failed to authenticate request: %+v", err)
				response.InternalServerError(w, "")
				return
			}

			if !gate.allows(user.Role) {
				response.Forbidden(w, fmt.Sprintf("%s not authorized for this resource!", user.Role))
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *AuthMiddleware) RequirePatient(next http.Handler) http.Handler {
	return m.Require(PatientGate)(next)
}

func (m *AuthMiddleware) RequireDoctor(next http.Handler) http.Handler {
	return m.Require(DoctorGate)(next)
}

func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.Require(AdminGate)(next)
}

func (m *AuthMiddleware) RequireAdminOrDoctor(next http.Handler) http.Handler {
	return m.Require(AdminOrDoctorGate)(next)
}

func (m *AuthMiddleware) RequireAny(next http.Handler) http.Handler {
	return m.Require(AnyGate)(next)
}

func (g Gate) allows(role entity.Role) bool {
	for _, r := range g.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// tokenFor returns the first session token the gate accepts: the role
// cookies in gate order, then the bearer header.
func tokenFor(r *http.Request, gate Gate) string {
	for _, role := range gate.Roles {
		if c, err := r.Cookie(role.CookieName()); err == nil && c.Value != "" {
			return c.Value
		}
	}
	if gate.Bearer {
		parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// GetUserFromContext returns the user stored by Require
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok && user != nil
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// WithUser stores user and tokenID the way Require does
func WithUser(ctx context.Context, user *entity.User, tokenID string) context.Context {
	ctx = context.WithValue(ctx, UserKey, user)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}
