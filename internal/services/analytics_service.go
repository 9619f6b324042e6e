package services

import (
	"context"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"
	"ridehail/pkg/logger"
)

type AnalyticsService interface {
	// ComplaintStats groups complaints by status, optionally keeping only
	// one status. An empty status means no filter.
	ComplaintStats(ctx context.Context, status string) (*models.ComplaintAnalytics, error)
}

type analyticsService struct {
	analyticsRepo interfaces.AnalyticsRepository
	logger        *logger.Logger
}

func NewAnalyticsService(analyticsRepo interfaces.AnalyticsRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

func (s *analyticsService) ComplaintStats(ctx context.Context, status string) (*models.ComplaintAnalytics, error) {
	var filter *models.ComplaintStatus
	if status != "" {
		st := models.ComplaintStatus(status)
		filter = &st
	}

	groups, err := s.analyticsRepo.ComplaintsByStatus(ctx, filter)
	if err != nil {
		return nil, Internal("Failed to get complaints analytics", err)
	}

	analytics := &models.ComplaintAnalytics{Groups: groups}
	for _, group := range groups {
		analytics.Count += group.Count
	}
	if analytics.Groups == nil {
		analytics.Groups = []*models.ComplaintStatusGroup{}
	}
	return analytics, nil
}
