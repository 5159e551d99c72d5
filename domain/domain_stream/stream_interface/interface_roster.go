package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// PriorityArtistRepository 名单只读，增删由管理端离线维护
type PriorityArtistRepository interface {
	List(ctx context.Context) ([]stream_models.PriorityArtist, error)
}
