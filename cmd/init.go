package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/profile-scout/internal/collect"
	"github.com/sells-group/profile-scout/internal/search"
	"github.com/sells-group/profile-scout/internal/store"
	"github.com/sells-group/profile-scout/pkg/brave"
	"github.com/sells-group/profile-scout/pkg/gcse"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "scout.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initProvider builds the configured search provider and returns it with its
// name for run bookkeeping.
func initProvider(name string) (collect.Provider, string, error) {
	if name == "" {
		name = cfg.Provider.Name
	}
	switch name {
	case "brave":
		if cfg.Provider.Brave.Key == "" {
			return nil, "", eris.New("brave API key is required (SCOUT_PROVIDER_BRAVE_KEY)")
		}
		client := brave.NewClient(cfg.Provider.Brave.Key, brave.WithBaseURL(cfg.Provider.Brave.BaseURL))
		return search.NewBraveProvider(client), name, nil
	case "google":
		if cfg.Provider.Google.Key == "" || cfg.Provider.Google.CX == "" {
			return nil, "", eris.New("google API key and CX are required (SCOUT_PROVIDER_GOOGLE_KEY, SCOUT_PROVIDER_GOOGLE_CX)")
		}
		client := gcse.NewClient(cfg.Provider.Google.Key, cfg.Provider.Google.CX, gcse.WithBaseURL(cfg.Provider.Google.BaseURL))
		return search.NewGoogleProvider(client), name, nil
	default:
		return nil, "", eris.Errorf("unsupported provider: %s", name)
	}
}
