package client

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
)

// Client is the remote user-record store.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Signup(ctx context.Context, name, email string, password []byte) error
	UpdateSettings(ctx context.Context, email string, darkMode bool) error
}
