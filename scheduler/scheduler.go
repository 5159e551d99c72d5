package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_util"
)

// Ingestor 单艺术家的三个抓取子任务，由 usecase_stream.IngestUsecase 实现
type Ingestor interface {
	IngestArtistOverall(ctx context.Context, artistID, dateStamp string) error
	IngestArtistAlbums(ctx context.Context, artistID, dateStamp string) error
	IngestArtistSongs(ctx context.Context, artistID, dateStamp string) error
}

// ArtistResult 一个艺术家三个子任务的成败记录
type ArtistResult struct {
	ArtistID string `json:"artistId"`
	Overall  bool   `json:"overall"`
	Albums   bool   `json:"albums"`
	Songs    bool   `json:"songs"`
}

// Scheduler 每日定时抓取：名单内艺术家严格串行，
// 艺术家之间留固定间隔避开上游限流，全部完成后整体清空下游缓存。
// 同一时刻最多一轮在跑，重叠触发直接丢弃不排队。
type Scheduler struct {
	roster      stream_interface.PriorityArtistRepository
	ingest      Ingestor
	cache       stream_interface.Cache
	clock       Clock
	artistDelay time.Duration

	cronSpec string
	location *time.Location
	cron     *cron.Cron
}

func New(
	roster stream_interface.PriorityArtistRepository,
	ingest Ingestor,
	cache stream_interface.Cache,
	clock Clock,
	artistDelay time.Duration,
	cronSpec string,
	location *time.Location,
) *Scheduler {
	return &Scheduler{
		roster:      roster,
		ingest:      ingest,
		cache:       cache,
		clock:       clock,
		artistDelay: artistDelay,
		cronSpec:    cronSpec,
		location:    location,
	}
}

// Start 注册定时任务并启动，触发时已有运行中的一轮则跳过本次触发
func (s *Scheduler) Start() error {
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(s.cronSpec, func() {
		s.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to register cron job: %w", err)
	}
	c.Start()
	s.cron = c
	log.Printf("scheduler started: spec=%q timezone=%s", s.cronSpec, s.location)
	return nil
}

// Stop 停止触发器，运行中的一轮不被打断
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run 执行一整轮抓取并返回逐艺术家结果
// 单个子任务失败只记录不中断；只有存储不可用会提前终止本轮
func (s *Scheduler) Run(ctx context.Context) []ArtistResult {
	log.Printf("====== scrape run started ======")
	dateStamp := domain_util.EffectiveStamp(s.clock.Now())

	artists, err := s.roster.List(ctx)
	if err != nil {
		log.Printf("scrape run aborted: failed to load priority artists: %v", err)
		return nil
	}

	results := make([]ArtistResult, 0, len(artists))
	for i, artist := range artists {
		log.Printf("====== artist %s ======", artist.SpotifyID)

		result := ArtistResult{ArtistID: artist.SpotifyID}
		var fatal bool
		result.Overall, fatal = s.step(ctx, "overall", artist.SpotifyID, dateStamp, s.ingest.IngestArtistOverall)
		if !fatal {
			result.Albums, fatal = s.step(ctx, "albums", artist.SpotifyID, dateStamp, s.ingest.IngestArtistAlbums)
		}
		if !fatal {
			result.Songs, fatal = s.step(ctx, "songs", artist.SpotifyID, dateStamp, s.ingest.IngestArtistSongs)
		}
		results = append(results, result)
		if fatal {
			log.Printf("scrape run aborted at artist %s: persistence unavailable", artist.SpotifyID)
			return results
		}

		// 最后一个艺术家之后不再等待
		if i != len(artists)-1 {
			log.Printf("====== waiting %s before next artist ======", s.artistDelay)
			select {
			case <-ctx.Done():
				log.Printf("scrape run cancelled: %v", ctx.Err())
				return results
			case <-time.After(s.artistDelay):
			}
		}
	}

	log.Printf("====== scrape run results: %+v ======", results)

	if err := s.cache.FlushAll(ctx); err != nil {
		log.Printf("failed to flush cache after scrape run: %v", err)
	}
	return results
}

// step 执行一个子任务；返回 (成功与否, 是否存储故障)
func (s *Scheduler) step(ctx context.Context, name, artistID, dateStamp string, fn func(context.Context, string, string) error) (bool, bool) {
	err := fn(ctx, artistID, dateStamp)
	if err == nil {
		return true, false
	}
	log.Printf("artist %s %s step failed: %v", artistID, name, err)
	return false, errors.Is(err, domain.ErrPersistence)
}
