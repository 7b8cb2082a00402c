package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetActorFromContext(c)
	assert.ErrorIs(t, err, ErrNoClaims)

	c.Set("claims", &types.Claims{UserID: 7, Email: " Amy@Test.com", Name: "Amy", Elevated: true})
	actor, err := GetActorFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(7), actor.ID)
	assert.Equal(t, "amy@test.com", actor.Email)
	assert.True(t, actor.HasElevatedAccess())

	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestGetActorFromContext_WrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("claims", "nope")

	_, err := GetActorFromContext(c)
	assert.Error(t, err)
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, v := range []string{"0", "-1", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: v}}
		_, err := ParseIDParam(c, "id")
		assert.Error(t, err, v)
	}
}
