package adapter

import (
	"context"
	"encoding/json"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// RemoteAPI delivers record payloads to the dashboard's REST endpoints.
// Success means the server answered with any 2xx status; response bodies
// are not interpreted beyond that.
type RemoteAPI interface {
	Push(ctx context.Context, collection entity.Collection, payload json.RawMessage) error
}
