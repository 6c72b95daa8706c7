package batch

import (
	"github.com/google/uuid"
)

// Outcome classifies how a single chip was handled.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeNotFound
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeNotFound:
		return "not found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of processing one chip number.
type Result struct {
	Chip     string
	Outcome  Outcome
	AnimalID int   // zero unless the chip resolved
	Err      error // set for OutcomeNotFound and OutcomeFailed
}

// Report aggregates the results of a batch run.
type Report struct {
	RunID     uuid.UUID
	Results   []Result
	Succeeded int
	NotFound  int
	Failed    int

	// Cancelled is set when the context ended before every chip was processed.
	Cancelled bool
}

func newReport() Report {
	return Report{RunID: uuid.New()}
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case OutcomeSucceeded:
		r.Succeeded++
	case OutcomeNotFound:
		r.NotFound++
	case OutcomeFailed:
		r.Failed++
	}
}

// Processed is the number of chips handled, whatever their outcome.
func (r Report) Processed() int {
	return len(r.Results)
}

// Unsuccessful lists the chips that were not vaccinated, in processing order.
func (r Report) Unsuccessful() []string {
	var chips []string
	for _, res := range r.Results {
		if res.Outcome != OutcomeSucceeded {
			chips = append(chips, res.Chip)
		}
	}
	return chips
}
