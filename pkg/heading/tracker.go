package heading

import (
	"fmt"
	"math"
	"sync"

	"github.com/pkg/errors"

	"github.com/kopernikusauto/angles/pkg/angle"
)

func New(cfg Config) *Tracker {
	return &Tracker{
		cfg: cfg,
		state: state{
			currentHeading: cfg.InitialHeading,
		},
	}
}

// Tracker turns a stream of wrapped yaw readings into a continuous heading
// that keeps counting past ±π instead of jumping by a full turn.  It is safe
// for concurrent use.
type Tracker struct {
	cfg Config

	lock sync.Mutex
	state
}

type state struct {
	currentHeading float64
	samples        int
}

// Update feeds one raw yaw reading to the tracker and returns the new
// continuous heading.  Non-finite readings are rejected and leave the
// heading untouched.
func (t *Tracker) Update(sample float64) (float64, error) {
	if math.IsNaN(sample) || math.IsInf(sample, 0) {
		fmt.Printf("Tracker: rejected sample %v\n", sample)
		return t.CurrentHeading(), errors.Wrapf(angle.ErrInvalidInput, "tracker sample %v", sample)
	}
	normalized := angle.Normalize(sample - t.cfg.ZeroOffset)

	t.lock.Lock()
	defer t.lock.Unlock()

	unwrapped, err := angle.Denormalize(t.currentHeading, normalized)
	if err != nil {
		return t.currentHeading, errors.Wrap(err, "failed to unwrap sample")
	}
	t.currentHeading = unwrapped
	t.samples++
	return unwrapped, nil
}

func (t *Tracker) CurrentHeading() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.currentHeading
}

// Turns returns the accumulated number of full rotations, signed.
func (t *Tracker) Turns() float64 {
	return t.CurrentHeading() / (2 * math.Pi)
}

func (t *Tracker) Samples() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.samples
}

func (t *Tracker) Reset(heading float64) error {
	if math.IsNaN(heading) || math.IsInf(heading, 0) {
		return errors.Wrapf(angle.ErrInvalidInput, "reset heading %v", heading)
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	fmt.Printf("Tracker: reset heading %.3f -> %.3f after %d samples\n", t.currentHeading, heading, t.samples)
	t.currentHeading = heading
	t.samples = 0
	return nil
}
