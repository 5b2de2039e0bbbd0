package job

import (
	"Showcase/internal/pkg/logger"
	"Showcase/internal/repository"
	"Showcase/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

const metricScanBatchSize = 200

type PortfolioMetricsJob struct {
	portfolioRepo repository.PortfolioRepo
	metricSvc     service.PortfolioMetricService
}

func NewPortfolioMetricsJob(
	portfolioRepo repository.PortfolioRepo,
	metricSvc service.PortfolioMetricService,
) *PortfolioMetricsJob {
	return &PortfolioMetricsJob{
		portfolioRepo: portfolioRepo,
		metricSvc:     metricSvc,
	}
}

// Run 按游标遍历全部作品集，为每个作品集落一条当日指标快照
func (s *PortfolioMetricsJob) Run() {
	traceID := "job-portfolio-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "start syncing portfolio daily metrics")

	var lastID uint64
	totalCount := 0
	successCount := 0

	for {
		ids, err := s.portfolioRepo.ListPortfolioIDs(ctx, lastID, metricScanBatchSize)
		if err != nil {
			log.ErrorContext(ctx, "list portfolio ids error", "last_id", lastID, "err", err)
			return
		}
		if len(ids) == 0 {
			break
		}

		for _, pid := range ids {
			totalCount++
			if err = s.metricSvc.SyncPortfolioMetric(ctx, pid); err != nil {
				log.ErrorContext(ctx, "sync portfolio daily metric error", "pid", pid, "err", err)
				continue
			}
			successCount++
		}

		lastID = ids[len(ids)-1]
	}

	log.InfoContext(ctx, "sync portfolio metrics success",
		"total_count", totalCount,
		"success_count", successCount)
}
