// Package source fetches the comment collection and the user profile from
// the remote JSON service (or a local mirror of it).
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/cristianoliveira/commentview/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Resource paths relative to the source base.
const (
	CommentsPath = "comments"
	UsersPath    = "users"
)

// ErrNoProfile is returned when the users collection is empty.
var ErrNoProfile = errors.New("no profile available")

// Source is the data source contract. Each call either resolves with data or
// fails; callers never receive partial data.
type Source interface {
	// FetchRecords returns the full comment collection.
	FetchRecords(ctx context.Context) ([]domain.Record, error)
	// FetchProfile returns the first entry of the users collection.
	FetchProfile(ctx context.Context) (domain.Profile, error)
}

// Snapshot holds both data sets fetched together.
type Snapshot struct {
	Records []domain.Record
	Profile domain.Profile
}

// FetchAll fetches records and profile concurrently. The first failure
// cancels the other request and is returned.
func FetchAll(ctx context.Context, src Source) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := src.FetchRecords(gctx)
		if err != nil {
			return err
		}
		snap.Records = records
		return nil
	})
	g.Go(func() error {
		profile, err := src.FetchProfile(gctx)
		if err != nil {
			return err
		}
		snap.Profile = profile
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// firstProfile returns the first user of a decoded users collection.
func firstProfile(users []domain.Profile) (domain.Profile, error) {
	if len(users) == 0 {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", ErrNoProfile)
	}
	return users[0], nil
}
