package api

import (
	"context"
	"errors"

	"github.com/collabhub/backend/auth"
)

type keyType string

const (
	claimsKey keyType = "claims"
)

// ctxWithClaims adds verified token claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxGetClaims retrieves the verified token claims from the context
func ctxGetClaims(ctx context.Context) (*auth.Claims, error) {
	if ctxValue := ctx.Value(claimsKey); ctxValue == nil {
		return nil, errors.New("key not found in context")
	} else if claims, ok := ctxValue.(*auth.Claims); !ok {
		return nil, errors.New("value is not of type `*auth.Claims`")
	} else {
		return claims, nil
	}
}
