package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
)

var (
	// ErrNoIdentity is returned when an operation is attempted without an
	// identity to key the profile by.
	ErrNoIdentity = errors.New("no identity")
	// ErrNotFound is returned by cache/remote lookups that miss.
	ErrNotFound = errors.New("profile not found")
)

// Cache is the fast tier: instant reads, best-effort durability. It also
// keeps a session marker per identity so sign-in state survives restarts.
type Cache interface {
	GetProfile(ctx context.Context, identity string) (models.UserProfile, error)
	SetProfile(ctx context.Context, profile models.UserProfile) error
	DeleteProfile(ctx context.Context, identity string) error
	MarkSession(ctx context.Context, identity string) error
	ClearSession(ctx context.Context, identity string) error
}

// Remote is the durable tier: one row per identity, full-profile upsert,
// last writer wins.
type Remote interface {
	Fetch(ctx context.Context, identity string) (models.UserProfile, error)
	Upsert(ctx context.Context, profile models.UserProfile) error
}

// ProfileStore reconciles the cache tier with the remote tier. Loads are
// local-first and remote-corrected; saves are cache-first with the remote
// sync logged-and-swallowed on failure. Remote unavailability is never fatal.
type ProfileStore struct {
	cache  Cache
	remote Remote
}

func NewProfileStore(cache Cache, remote Remote) *ProfileStore {
	return &ProfileStore{cache: cache, remote: remote}
}

// Load returns the profile for an identity. The provisional result is the
// cached profile (if it belongs to this identity) or a fresh default; when
// the remote has a row, its fields win and the merged result refreshes the
// cache. A remote failure degrades to the provisional result.
func (s *ProfileStore) Load(ctx context.Context, identity string) (models.UserProfile, error) {
	if identity == "" {
		return models.UserProfile{}, ErrNoIdentity
	}

	provisional := models.DefaultProfile(identity)
	cached, err := s.cache.GetProfile(ctx, identity)
	switch {
	case err == nil && cached.Email == identity:
		provisional = merge(provisional, cached)
	case err != nil && !errors.Is(err, ErrNotFound):
		log.Printf("profile cache read failed for %s: %v", identity, err)
	}

	remote, err := s.remote.Fetch(ctx, identity)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("cloud fetch failed for %s, using local state: %v", identity, err)
		}
		return provisional, nil
	}

	merged := merge(provisional, remote)
	if err := s.cache.SetProfile(ctx, merged); err != nil {
		log.Printf("profile cache refresh failed for %s: %v", identity, err)
	}
	return merged, nil
}

// Exists reports whether the remote store has a row for the identity.
// Used by registration to reject duplicate accounts.
func (s *ProfileStore) Exists(ctx context.Context, identity string) (bool, error) {
	if identity == "" {
		return false, ErrNoIdentity
	}
	_, err := s.remote.Fetch(ctx, identity)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the profile to the cache, then syncs it to the remote store.
// A remote failure is logged and swallowed; the next Load reconciles. A
// profile without an identity cannot be saved.
func (s *ProfileStore) Save(ctx context.Context, profile models.UserProfile) error {
	if profile.Email == "" {
		log.Println("cannot save profile without an identity")
		return ErrNoIdentity
	}

	if err := s.cache.SetProfile(ctx, profile); err != nil {
		return fmt.Errorf("cache write for %s: %w", profile.Email, err)
	}

	if err := s.remote.Upsert(ctx, profile); err != nil {
		log.Printf("cloud sync failed for %s: %v", profile.Email, err)
	}
	return nil
}

// Evict drops the cached profile and session marker for an identity. The
// remote row is kept; account reset does not delete cloud data.
func (s *ProfileStore) Evict(ctx context.Context, identity string) {
	if identity == "" {
		return
	}
	if err := s.cache.DeleteProfile(ctx, identity); err != nil {
		log.Printf("cache evict failed for %s: %v", identity, err)
	}
	if err := s.cache.ClearSession(ctx, identity); err != nil {
		log.Printf("session clear failed for %s: %v", identity, err)
	}
}

// MarkSession records a signed-in identity in the cache tier.
func (s *ProfileStore) MarkSession(ctx context.Context, identity string) {
	if err := s.cache.MarkSession(ctx, identity); err != nil {
		log.Printf("session mark failed for %s: %v", identity, err)
	}
}

// ClearSession drops the session marker without touching the cached profile.
func (s *ProfileStore) ClearSession(ctx context.Context, identity string) {
	if err := s.cache.ClearSession(ctx, identity); err != nil {
		log.Printf("session clear failed for %s: %v", identity, err)
	}
}

// merge layers an authoritative profile over a base with explicit
// precedence: identity keys are pinned to the base's, descriptive strings
// fall back to the base when the overlay left them empty, and trade state
// (balance, portfolio, transactions, watchlist, flags) is taken wholesale
// from the overlay, which by construction stores full profiles.
func merge(base, overlay models.UserProfile) models.UserProfile {
	out := overlay.Clone()
	out.ID = base.ID
	out.Email = base.Email
	if out.Name == "" {
		out.Name = base.Name
	}
	if out.Avatar == "" {
		out.Avatar = base.Avatar
	}
	if out.Location == "" {
		out.Location = base.Location
	}
	if out.Bio == "" {
		out.Bio = base.Bio
	}
	if out.Portfolio == nil {
		out.Portfolio = []models.PortfolioItem{}
	}
	if out.Transactions == nil {
		out.Transactions = []models.Transaction{}
	}
	if out.Watchlist == nil {
		out.Watchlist = []string{}
	}
	return out
}
