package cmd

import (
	"fmt"

	"github.com/velmora/storefront/app/api"
	"github.com/velmora/storefront/app/configs"
	"github.com/velmora/storefront/app/storage"
	"github.com/velmora/storefront/app/stores"
	"go.uber.org/zap"
)

// app is the wired application: config, logger, the local snapshot
// database and the stores rehydrated from it, plus the API clients.
type app struct {
	env      configs.ENV
	logger   *zap.Logger
	store    storage.Store
	auth     *stores.Auth
	cart     *stores.Cart
	wishlist *stores.Wishlist
	products *api.Products
	reviews  *api.Reviews
}

func newApp() (*app, error) {
	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewBadger(storage.DefaultBadgerOptions(env.DataDir))
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	// The auth store supplies the bearer token for the client that
	// its own backend calls go through, so the client is handed a
	// late-bound token source.
	var auth *stores.Auth
	client := api.NewClient(env.APIBaseURL, api.TokenFunc(func() string {
		if auth == nil {
			return ""
		}
		return auth.Token()
	}), logger)
	auth = stores.NewAuth(api.NewAccount(client), store, logger)

	return &app{
		env:      env,
		logger:   logger,
		store:    store,
		auth:     auth,
		cart:     stores.NewCart(store, logger),
		wishlist: stores.NewWishlist(store, logger),
		products: api.NewProducts(client),
		reviews:  api.NewReviews(client),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close local storage", zap.Error(err))
	}
	a.logger.Sync()
}
