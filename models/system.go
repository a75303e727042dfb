package models

// Command 디바이스에 전달하는 고정 제어 명령
type Command struct {
	Action string `json:"action"`
	Speed  int    `json:"speed"`
	Mode   string `json:"mode"`
}

// DefaultCommand 현재 유일한 명령
func DefaultCommand() Command {
	return Command{Action: "set_motor", Speed: 120, Mode: "auto"}
}

// Stats 저장소 통계
type Stats struct {
	APIKeys             int64 `json:"api_keys"`
	Devices             int64 `json:"devices"`
	SensorReadings      int64 `json:"sensor_readings"`
	TemperatureReadings int64 `json:"temperature_readings"`
	LogEntries          int64 `json:"log_entries"`
	Screenshots         int64 `json:"screenshots"`
}

// HealthStatus 헬스 체크 응답
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// StatusMessage 단순 상태 응답 (레거시 /data)
type StatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
