package response_models

// Credential values never leave the server; the client only learns whether
// each key is configured.
type SettingsResponse struct {
	DashScopeAPIKeySet bool `json:"dashscope_api_key_set"`
	BaiduMapAKSet      bool `json:"baidu_map_ak_set"`
}
