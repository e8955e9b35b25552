// Package augment defines the reply augmentation interface. Augmenters run
// after a successful model reply and may append extra information to the
// outgoing message. Augmentation is best effort; a failing augmenter must
// never block or fail the reply itself.
package augment

import (
	"context"

	"github.com/flemzord/wattsup/internal/trip"
)

// Augmenter produces an optional supplement for a reply based on the
// accumulated trip facts. An empty string means nothing to add.
type Augmenter interface {
	// Supplement returns extra text to append to a reply, or "" when the
	// facts are insufficient or the lookup failed. Implementations report
	// errors for logging only; callers send the reply either way.
	Supplement(ctx context.Context, facts trip.Facts) (string, error)
}
