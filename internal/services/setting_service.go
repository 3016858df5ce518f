package services

import (
	"context"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/utils"
)

type SettingServiceInterface interface {
	GetSettings(ctx context.Context, userId string) (*response_models.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userId string, req request_models.UpdateSettingsRequest) error
}

type SettingService struct {
	settingRepo repositories.SettingRepository
}

func NewSettingService(settingRepo repositories.SettingRepository) SettingServiceInterface {
	return &SettingService{
		settingRepo: settingRepo,
	}
}

func (s *SettingService) GetSettings(ctx context.Context, userId string) (*response_models.SettingsResponse, error) {
	apiKey, err := s.settingRepo.Get(ctx, userId, db_models.SettingDashScopeAPIKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	mapAK, err := s.settingRepo.Get(ctx, userId, db_models.SettingBaiduMapAK)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SettingsResponse{
		DashScopeAPIKeySet: apiKey != "",
		BaiduMapAKSet:      mapAK != "",
	}, nil
}

func (s *SettingService) UpdateSettings(ctx context.Context, userId string, req request_models.UpdateSettingsRequest) error {
	if req.DashScopeAPIKey != nil {
		if err := s.settingRepo.Set(ctx, userId, db_models.SettingDashScopeAPIKey, *req.DashScopeAPIKey); err != nil {
			return utils.ErrDatabaseError
		}
	}
	if req.BaiduMapAK != nil {
		if err := s.settingRepo.Set(ctx, userId, db_models.SettingBaiduMapAK, *req.BaiduMapAK); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}
