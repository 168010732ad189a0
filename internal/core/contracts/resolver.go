package contracts

import (
	"context"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

// ChannelResolver pushes bytes to one specific live connection through the
// transport management plane. The endpoint is per-call configuration (the
// plane's base address for this deployment) so the coordinator can be tested
// with a fake and fanout can target any node.
//
// Implementations must distinguish precisely between the target being gone
// (DeliveryGone) and every other failure (DeliveryFailed), and must bound
// their own wait so one dead endpoint cannot stall a fanout.
type ChannelResolver interface {
	Send(ctx context.Context, endpoint, connectionID string, data []byte) domain.DeliveryOutcome
}
