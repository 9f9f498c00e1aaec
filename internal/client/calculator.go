package client

import (
	"context"
	"strings"

	service "github.com/okian/lovecalc/internal/app"
	"github.com/okian/lovecalc/internal/domain/scoring"
	"github.com/okian/lovecalc/pkg/logger"
)

// MinAge is the youngest age the form suggests. It is advisory only.
const MinAge = 16

// Saver persists a calculation.
type Saver interface {
	Save(ctx context.Context, req SaveRequest) error
}

// Input holds the form fields as typed.
type Input struct {
	YourName  string
	YourAge   string
	CrushName string
}

// Result is what the user is shown.
type Result struct {
	YourName   string
	YourAge    int
	CrushName  string
	Percentage int
	Breakdown  scoring.Breakdown
}

// BelowMinAge reports whether the age is under MinAge.
func (r Result) BelowMinAge() bool { return r.YourAge < MinAge }

// Outcome is a displayed result plus the pending save. Saved yields exactly
// one value, nil when the calculation was stored, and is then closed.
type Outcome struct {
	Result Result
	Saved  <-chan error
}

// Calculator scores names locally and saves the result in the background.
type Calculator struct {
	saver   Saver
	display func(Result)
	logger  logger.Logger
}

// NewCalculator creates a calculator that saves through saver.
func NewCalculator(saver Saver, opts ...Option) *Calculator {
	c := &Calculator{
		saver:   saver,
		display: func(Result) {},
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run validates in, shows the score and starts saving it. The only error
// is ErrIncompleteForm; a failed save is reported on Outcome.Saved and
// never changes the result.
func (c *Calculator) Run(ctx context.Context, in Input) (Outcome, error) {
	if strings.TrimSpace(in.YourName) == "" || strings.TrimSpace(in.CrushName) == "" || strings.TrimSpace(in.YourAge) == "" {
		return Outcome{}, ErrIncompleteForm
	}
	age, err := service.ParseAge(in.YourAge)
	if err != nil {
		return Outcome{}, ErrIncompleteForm
	}

	b := scoring.Explain(in.YourName, in.CrushName)
	res := Result{
		YourName:   in.YourName,
		YourAge:    int(age),
		CrushName:  in.CrushName,
		Percentage: b.Score,
		Breakdown:  b,
	}
	c.display(res)

	saved := make(chan error, 1)
	go func() {
		defer close(saved)
		err := c.saver.Save(ctx, SaveRequest{
			YourName:             res.YourName,
			YourAge:              res.YourAge,
			CrushName:            res.CrushName,
			CalculatedPercentage: res.Percentage,
		})
		if err != nil {
			c.logger.Warn(ctx, "failed to save calculation", logger.Error(err))
		}
		saved <- err
	}()

	return Outcome{Result: res, Saved: saved}, nil
}
