package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/savasana/yoga-web/internal/app/models"
)

// UserClient covers the account endpoints.
type UserClient struct {
	rest *restClient
}

func (c *UserClient) GetByID(ctx context.Context, id int64) (models.UserAccount, error) {
	var user models.UserAccount
	if err := c.rest.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", id), nil, &user); err != nil {
		return models.UserAccount{}, err
	}
	return user, nil
}

// Delete removes an account. Only the owner calls this, and a successful
// delete forces a logout on the caller's side.
func (c *UserClient) Delete(ctx context.Context, id int64) error {
	return c.rest.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", id), nil, nil)
}
