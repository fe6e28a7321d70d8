package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/logging"
)

// SecuritySchemeName is the OpenAPI security scheme handlers reference.
const SecuritySchemeName = "bearerAuth"

// BearerSecurity marks an operation as requiring a session token.
var BearerSecurity = []map[string][]string{{SecuritySchemeName: {}}}

type ownerKey struct{}

// WithOwner returns a context carrying the authenticated owner id.
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext returns the owner id set by the middleware.
func OwnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(ownerKey{}).(uuid.UUID)
	return ownerID, ok
}

type tokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// AddSecurityScheme registers the bearer scheme in the OpenAPI document.
func AddSecurityScheme(api huma.API) {
	components := api.OpenAPI().Components
	if components.SecuritySchemes == nil {
		components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	components.SecuritySchemes[SecuritySchemeName] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}

// Middleware rejects operations that declare bearer security unless the
// request carries a valid token. Missing and invalid tokens get the same 401.
func Middleware(api huma.API, verifier tokenVerifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresBearer(ctx.Operation()) {
			next(ctx)
			return
		}

		logData := logging.GetLogData(ctx.Context())

		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			if logData != nil {
				logData.AddData("authFailure", "missing bearer token")
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}

		ownerID, err := verifier.Verify(token)
		if err != nil {
			if logData != nil {
				logData.AddData("authFailure", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}

		if logData != nil {
			logData.AddData("ownerID", ownerID.String())
		}
		next(huma.WithContext(ctx, WithOwner(ctx.Context(), ownerID)))
	}
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SecuritySchemeName]; ok {
			return true
		}
	}
	return false
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
