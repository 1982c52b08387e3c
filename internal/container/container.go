package container

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/saulo-duarte/clubhouse/internal/attendance"
	"github.com/saulo-duarte/clubhouse/internal/auth"
	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/event"
	"github.com/saulo-duarte/clubhouse/internal/finance"
	"github.com/saulo-duarte/clubhouse/internal/goal"
	"github.com/saulo-duarte/clubhouse/internal/member"
	"github.com/saulo-duarte/clubhouse/internal/observability"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
	"github.com/saulo-duarte/clubhouse/internal/router"
)

// Stores maps a store name to its CSV file name under the data directory.
var Stores = map[string]struct {
	File   string
	Schema recordstore.Schema
}{
	"members":    {"members.csv", member.Schema},
	"attendance": {"attendance.csv", attendance.Schema},
	"finances":   {"finances.csv", finance.Schema},
	"events":     {"events.csv", event.Schema},
	"goals":      {"goals.csv", goal.Schema},
}

type Container struct {
	Config config.Config

	Stores map[string]*recordstore.Store

	Tokens      *auth.TokenManager
	AuthHandler *auth.Handler

	MemberContainer     *member.Container
	AttendanceContainer *attendance.Container
	FinanceContainer    *finance.Container
	EventContainer      *event.Container
	GoalContainer       *goal.Container
}

// New builds every store under cfg.DataDir, creating missing files, and wires
// the entity containers on top of them.
func New(cfg config.Config) (*Container, error) {
	stores, err := OpenStores(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}
	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewHandler(creds, tokens, auth.CookieOptions{
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
	})

	memberContainer := member.NewContainer(stores["members"])

	return &Container{
		Config:              cfg,
		Stores:              stores,
		Tokens:              tokens,
		AuthHandler:         authHandler,
		MemberContainer:     memberContainer,
		AttendanceContainer: attendance.NewContainer(stores["attendance"], memberContainer.Service),
		FinanceContainer:    finance.NewContainer(stores["finances"]),
		EventContainer:      event.NewContainer(stores["events"]),
		GoalContainer:       goal.NewContainer(stores["goals"]),
	}, nil
}

// Handler returns the HTTP router serving every mounted module.
func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		Tokens:            c.Tokens,
		AuthHandler:       c.AuthHandler,
		MemberHandler:     c.MemberContainer.Handler,
		AttendanceHandler: c.AttendanceContainer.Handler,
		FinanceHandler:    c.FinanceContainer.Handler,
		EventHandler:      c.EventContainer.Handler,
		GoalHandler:       c.GoalContainer.Handler,
	})
}

// OpenStores opens and initializes every store under dir. It needs no
// credentials and backs the offline CLI commands.
func OpenStores(dir string) (map[string]*recordstore.Store, error) {
	stores := make(map[string]*recordstore.Store, len(Stores))
	for name, def := range Stores {
		s := recordstore.New(
			filepath.Join(dir, def.File),
			def.Schema,
			recordstore.WithLogger(config.Logger),
			recordstore.WithObserver(observability.ObserveStoreOperation),
		)
		if err := s.EnsureInitialized(); err != nil {
			return nil, fmt.Errorf("initialize %s store: %w", name, err)
		}
		stores[name] = s
	}
	return stores, nil
}

func credentials(cfg config.Config) (*auth.StaticCredentials, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		if cfg.AdminPassword == "" {
			return nil, errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
		}
		config.Logger.Warn("ADMIN_PASSWORD_HASH not set, hashing ADMIN_PASSWORD at startup")
		var err error
		hash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
	}
	return auth.NewStaticCredentials(cfg.AdminUsername, hash)
}
