package gormrepo

import (
	"context"

	"mvcapp/internal/adapter/repo/gorm/model"
	"mvcapp/internal/app/ports"

	"gorm.io/gorm"
)

type PageViewRepo struct {
	db *gorm.DB
}

func NewPageViewRepo(db *gorm.DB) PageViewRepo {
	return PageViewRepo{db: db}
}

func (r PageViewRepo) Append(ctx context.Context, view ports.PageView) error {
	row := model.PageView{
		RequestID:  view.RequestID,
		Controller: view.Controller,
		Action:     view.Action,
		ViewedAt:   view.ViewedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r PageViewRepo) CountByAction(ctx context.Context, controller, action string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.PageView{}).
		Where(&model.PageView{Controller: controller, Action: action}).
		Count(&n).Error
	return n, err
}
