// Package batch drives a vaccination run over a list of chip numbers.
//
// Each chip is resolved to an animal and then vaccinated. Failures are
// isolated per chip: they are recorded as a Result and the run moves on.
package batch

import (
	"context"
	"errors"

	"github.com/naveenspark/chipvax/internal/logging"
	"github.com/naveenspark/chipvax/pkg/client"
	"github.com/naveenspark/chipvax/pkg/domain"
)

// Registry is the subset of the registry API a run needs.
// *client.Client satisfies it.
type Registry interface {
	FindAnimal(ctx context.Context, chip string) (int, error)
	AddVaccination(ctx context.Context, animalID int, userID string, v domain.Vaccination) error
}

// Runner applies one vaccination to a sequence of chips.
type Runner struct {
	registry    Registry
	vaccination domain.Vaccination
	userID      string
	log         logging.Logger
}

// NewRunner creates a Runner submitting v on behalf of userID.
func NewRunner(registry Registry, v domain.Vaccination, userID string, log logging.Logger) *Runner {
	return &Runner{
		registry:    registry,
		vaccination: v,
		userID:      userID,
		log:         log,
	}
}

// Process resolves chip and submits the vaccination for it.
func (r *Runner) Process(ctx context.Context, chip string) Result {
	animalID, err := r.registry.FindAnimal(ctx, chip)
	if errors.Is(err, client.ErrAnimalNotFound) {
		r.log.Warn(ctx, "animal not found", "chip", chip)
		return Result{Chip: chip, Outcome: OutcomeNotFound, Err: err}
	}
	if err != nil {
		r.log.Error(ctx, "animal lookup failed", "chip", chip, "err", err)
		return Result{Chip: chip, Outcome: OutcomeFailed, Err: err}
	}

	if err := r.registry.AddVaccination(ctx, animalID, r.userID, r.vaccination); err != nil {
		r.log.Error(ctx, "vaccination failed", "chip", chip, "animal_id", animalID, "err", err)
		return Result{Chip: chip, Outcome: OutcomeFailed, AnimalID: animalID, Err: err}
	}

	r.log.Debug(ctx, "vaccinated", "chip", chip, "animal_id", animalID)
	return Result{Chip: chip, Outcome: OutcomeSucceeded, AnimalID: animalID}
}

// Run processes chips in order. observe, if non-nil, is called after every
// chip. Run returns early only when ctx is done.
func (r *Runner) Run(ctx context.Context, chips []string, observe func(Result)) Report {
	report := newReport()
	log := r.log.With("run_id", report.RunID.String())
	item := &Runner{registry: r.registry, vaccination: r.vaccination, userID: r.userID, log: log}

	log.Info(ctx, "batch started", "chips", len(chips), "vaccine", r.vaccination.Name, "batch_number", r.vaccination.BatchNumber)
	for _, chip := range chips {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}
		res := item.Process(ctx, chip)
		report.add(res)
		if observe != nil {
			observe(res)
		}
	}
	log.Info(ctx, "batch finished",
		"processed", report.Processed(),
		"succeeded", report.Succeeded,
		"not_found", report.NotFound,
		"failed", report.Failed,
		"cancelled", report.Cancelled)
	return report
}
