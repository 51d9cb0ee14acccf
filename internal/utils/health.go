package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthStatus struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Services  []ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthChecker struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}

	if h.DB != nil {
		status.add("PostgreSQL", h.pingDB(ctx))
	}
	if h.Redis != nil {
		status.add("Redis", h.pingRedis(ctx))
	}

	return status
}

func (s *HealthStatus) add(name string, err error) {
	svc := ServiceHealth{Name: name, Status: "up"}
	if err != nil {
		svc.Status = "down"
		svc.Message = err.Error()
		s.Status = "degraded"
	}
	s.Services = append(s.Services, svc)
}

func (h *HealthChecker) pingDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (h *HealthChecker) pingRedis(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return h.Redis.Ping(ctx).Err()
}
