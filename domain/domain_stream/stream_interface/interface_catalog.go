package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// Catalog 第三方音乐目录查询能力
// 单行创建路径依赖它补全元数据，查询失败只跳过该行
type Catalog interface {
	Artist(ctx context.Context, spotifyID string) (*stream_models.CatalogArtist, error)
	Track(ctx context.Context, spotifyID string) (*stream_models.CatalogTrack, error)
	Album(ctx context.Context, spotifyID string) (*stream_models.CatalogAlbum, error)
}
