package request_models

type UpdateSettingsRequest struct {
	DashScopeAPIKey *string `json:"dashscope_api_key"`
	BaiduMapAK      *string `json:"baidu_map_ak"`
}
