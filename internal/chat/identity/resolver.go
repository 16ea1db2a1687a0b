// Package identity maps the references handed to the chat core (guide profile
// ids from listing cards, account ids from booking flows) onto account ids.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"gotravel/internal/chat/repository"
	"gotravel/internal/common"
)

const (
	GuidePrefix   = "guide:"
	AccountPrefix = "account:"
)

type Resolver struct {
	directory repository.DirectoryRepository
	strict    bool
	log       *logrus.Logger
}

// NewResolver builds a resolver. In strict mode a bare reference that is not a
// guide profile must name an existing account.
func NewResolver(directory repository.DirectoryRepository, strict bool, log *logrus.Logger) *Resolver {
	return &Resolver{directory: directory, strict: strict, log: log}
}

// Resolve returns the account id that ref stands for.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", common.ErrResolutionFailure)
	}

	switch {
	case strings.HasPrefix(ref, AccountPrefix):
		accountID := strings.TrimPrefix(ref, AccountPrefix)
		if accountID == "" {
			return "", fmt.Errorf("%w: empty account reference", common.ErrResolutionFailure)
		}
		if r.strict {
			return r.verifyAccount(ctx, accountID)
		}
		return accountID, nil

	case strings.HasPrefix(ref, GuidePrefix):
		profileID := strings.TrimPrefix(ref, GuidePrefix)
		accountID, found, err := r.lookupProfile(ctx, profileID)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf("%w: no guide profile %q", common.ErrResolutionFailure, profileID)
		}
		return accountID, nil
	}

	accountID, found, err := r.lookupProfile(ctx, ref)
	if err != nil {
		return "", err
	}
	if found {
		return accountID, nil
	}

	if r.strict {
		return r.verifyAccount(ctx, ref)
	}

	// Unknown refs are taken to be account ids already.
	r.log.WithField("ref", ref).Debug("reference is not a guide profile, using it as account id")
	return ref, nil
}

func (r *Resolver) lookupProfile(ctx context.Context, profileID string) (string, bool, error) {
	if profileID == "" {
		return "", false, nil
	}
	profile, err := r.directory.GuideProfileByID(ctx, profileID)
	switch {
	case err == nil:
		if profile.AccountID == "" {
			return "", false, fmt.Errorf("%w: guide profile %q has no owner", common.ErrResolutionFailure, profileID)
		}
		return profile.AccountID, true, nil
	case errors.Is(err, common.ErrNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("resolve %q: %w", profileID, err)
	}
}

func (r *Resolver) verifyAccount(ctx context.Context, accountID string) (string, error) {
	account, err := r.directory.AccountByID(ctx, accountID)
	if errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("%w: unknown account %q", common.ErrResolutionFailure, accountID)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", accountID, err)
	}
	return account.ID, nil
}
