package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

func claimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// GetActorFromContext builds the workflow actor from the JWT claims,
// including the elevated access flag.
var GetActorFromContext = func(c *gin.Context) (user.Actor, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return user.Actor{}, err
	}
	return user.Actor{
		ID:       claims.UserID,
		Email:    user.NormalizeEmail(claims.Email),
		Name:     claims.Name,
		Elevated: claims.Elevated,
	}, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}
