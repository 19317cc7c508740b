package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/storefront-client/internal/model"
)

func TestNormalizeSessionJWTFieldNestedUser(t *testing.T) {
	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"jwt": "signed-token",
			"user": echo.Map{
				"id":    5,
				"email": "ada@example.com",
				"roles": []echo.Map{{"id": 1, "name": "CUSTOMER"}},
			},
		})
	})

	client, _ := newTestClient(t, e)
	sess, err := client.Login(context.Background(), model.Credentials{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "signed-token", sess.Token)
	assert.Equal(t, "ada@example.com", sess.User.Email)
	assert.True(t, sess.User.HasRole(model.RoleCustomer))
}

func TestNormalizeSessionTokenFieldFlatUser(t *testing.T) {
	e := echo.New()
	e.POST("/auth/register", func(c echo.Context) error {
		// Older backend build: token under `token`, user fields flat.
		return c.JSON(http.StatusCreated, echo.Map{
			"token": "signed-token",
			"id":    9,
			"email": "new@example.com",
			"roles": []echo.Map{{"id": 1, "name": "CUSTOMER"}},
		})
	})

	client, _ := newTestClient(t, e)
	sess, err := client.Register(context.Background(), model.Registration{Email: "new@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "signed-token", sess.Token)
	assert.Equal(t, int64(9), sess.User.ID)
}

func TestNormalizeSessionMissingToken(t *testing.T) {
	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user": echo.Map{"id": 5, "email": "ada@example.com"},
		})
	})

	client, _ := newTestClient(t, e)
	_, err := client.Login(context.Background(), model.Credentials{Email: "ada@example.com", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClient)
}

func TestNormalizeSessionMissingUser(t *testing.T) {
	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"jwt": "signed-token"})
	})

	client, _ := newTestClient(t, e)
	_, err := client.Login(context.Background(), model.Credentials{Email: "ada@example.com", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClient)
}
