package main // Entry point package

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/api"
	"github.com/iliyamo/storefront-client/internal/config"
	"github.com/iliyamo/storefront-client/internal/storage"
	"github.com/iliyamo/storefront-client/internal/store"
)

// main wires the gateway and stores together and runs a short catalog
// browse, which doubles as a smoke test against a configured backend.
func main() {
	cfg := config.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	sessions := newSessionStore(cfg, log)
	client := api.New(cfg.BaseURL, cfg.RequestTimeout, sessions, log)

	auth := store.NewAuth(client, sessions, log)
	products := store.NewProducts(client, log)

	ctx := context.Background()
	auth.Rehydrate(ctx)
	if user := auth.User(); user != nil {
		log.WithField("email", user.Email).Info("restored session")
	}

	if err := products.FetchCategories(ctx); err != nil {
		log.WithError(err).Warn("categories unavailable")
	}
	if err := products.FetchFeaturedProducts(ctx); err != nil {
		log.WithError(err).Warn("featured products unavailable")
	}

	fmt.Printf("storefront @ %s\n", cfg.BaseURL)
	fmt.Printf("categories: %d\n", len(products.Categories()))
	for _, p := range products.Featured() {
		fmt.Printf("  %-40s %s\n", p.Name, p.Price.StringFixed(2))
	}
}

// newSessionStore picks the session backend.  Redis is only used when
// asked for and reachable; anything else degrades to the local file so
// the client always starts.
func newSessionStore(cfg config.Config, log *logrus.Logger) storage.SessionStore {
	if cfg.SessionBackend == "redis" {
		if rs := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rs != nil {
			return rs
		}
		log.Warn("redis unreachable, falling back to file session store")
	}
	return storage.NewFileStore(cfg.SessionFile)
}
