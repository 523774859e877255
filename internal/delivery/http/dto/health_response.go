package dto

type HealthResponse struct {
	Status          string `json:"status"`
	Timestamp       int64  `json:"timestamp"`
	DatabaseHealthy bool   `json:"database_healthy"`
	RedisHealthy    bool   `json:"redis_healthy"`
	OnlineUsers     int    `json:"online_users"`
	Connections     int    `json:"connections"`
}
