package app

import (
	"context"

	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/domain"
)

type ActivityRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetActivity(ctx context.Context, name string) (domain.Activity, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// RegistryService enforces the enrollment invariants over the activity
// repository: capacity is never exceeded, an email never appears twice
// in the same activity, and a failed operation leaves no partial state.
type RegistryService struct {
	repo ActivityRepository
}

func NewRegistryService(repo ActivityRepository) *RegistryService {
	return &RegistryService{repo: repo}
}

// List returns a snapshot of every activity.
func (s *RegistryService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.repo.ListActivities(ctx)
}

type EnrollInput struct {
	Activity string
	Email    string
}

// Enroll signs email up for the named activity. Checks run in order —
// activity exists, email not already present, strictly under capacity —
// inside one transaction, so nothing mutates on failure.
func (s *RegistryService) Enroll(ctx context.Context, in EnrollInput) (domain.Activity, error) {
	if in.Email == "" {
		return domain.Activity{}, domain.ErrEmailRequired
	}

	var result domain.Activity
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		act, err := s.repo.GetActivity(txCtx, in.Activity)
		if err != nil {
			return err
		}
		if act.HasParticipant(in.Email) {
			return domain.ErrAlreadyRegistered
		}
		if act.Full() {
			return domain.ErrActivityFull
		}
		if err := s.repo.AddParticipant(txCtx, in.Activity, in.Email); err != nil {
			return err
		}

		result, err = s.repo.GetActivity(txCtx, in.Activity)
		return err
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return result, nil
}

type WithdrawInput struct {
	Activity string
	Email    string
}

// Withdraw removes email from the named activity. The email must be
// currently signed up.
func (s *RegistryService) Withdraw(ctx context.Context, in WithdrawInput) (domain.Activity, error) {
	if in.Email == "" {
		return domain.Activity{}, domain.ErrEmailRequired
	}

	var result domain.Activity
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		act, err := s.repo.GetActivity(txCtx, in.Activity)
		if err != nil {
			return err
		}
		if !act.HasParticipant(in.Email) {
			return domain.ErrNotRegistered
		}
		if err := s.repo.RemoveParticipant(txCtx, in.Activity, in.Email); err != nil {
			return err
		}

		result, err = s.repo.GetActivity(txCtx, in.Activity)
		return err
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return result, nil
}
