package ports

import (
	"context"
	"time"
)

type PageView struct {
	RequestID  string
	Controller string
	Action     string
	ViewedAt   time.Time
}

type PageViewRepository interface {
	Append(ctx context.Context, view PageView) error
	CountByAction(ctx context.Context, controller, action string) (int64, error)
}
