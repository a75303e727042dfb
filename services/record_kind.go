package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"sensorhub/models"
)

// FieldSpec 레코드 필수 필드 정의
type FieldSpec struct {
	Name    string
	Numeric bool
	MaxLen  int  // 문자 수 제한, 0 이면 제한 없음
	Trim    bool // 앞뒤 공백 제거 후 저장 (필터 대상 식별자)
}

// Values 검증을 통과한 필드 값
type Values struct {
	strs map[string]string
	nums map[string]float64
}

// String 문자열 필드 값
func (v Values) String(name string) string { return v.strs[name] }

// Number 숫자 필드 값
func (v Values) Number(name string) float64 { return v.nums[name] }

// RecordKind 레코드 종류 설명자 (필드, 테이블, 필터, 조회 제한)
type RecordKind[T any] struct {
	Name      string
	Table     string
	Fields    []FieldSpec
	Filters   []string
	ListLimit int
	Build     func(id int64, ts time.Time, v Values) T
}

// SensorKind 센서 측정값
var SensorKind = RecordKind[models.SensorReading]{
	Name:  "sensor reading",
	Table: "sensor_data",
	Fields: []FieldSpec{
		{Name: "device_id", MaxLen: models.MaxDeviceIDLength, Trim: true},
		{Name: "sensor_type", MaxLen: 255, Trim: true},
		{Name: "value", Numeric: true},
	},
	Filters:   []string{"device_id", "sensor_type"},
	ListLimit: 100,
	Build: func(id int64, ts time.Time, v Values) models.SensorReading {
		return models.SensorReading{
			ID:         id,
			DeviceID:   v.String("device_id"),
			SensorType: v.String("sensor_type"),
			Value:      v.Number("value"),
			Timestamp:  ts,
		}
	},
}

// TemperatureKind 온습도 측정값
var TemperatureKind = RecordKind[models.TemperatureReading]{
	Name:  "temperature reading",
	Table: "temperature_readings",
	Fields: []FieldSpec{
		{Name: "device_id", MaxLen: models.MaxDeviceIDLength, Trim: true},
		{Name: "temperature_celsius", Numeric: true},
		{Name: "humidity_percent", Numeric: true},
	},
	Filters:   []string{"device_id"},
	ListLimit: 100,
	Build: func(id int64, ts time.Time, v Values) models.TemperatureReading {
		return models.TemperatureReading{
			ID:                 id,
			DeviceID:           v.String("device_id"),
			TemperatureCelsius: v.Number("temperature_celsius"),
			HumidityPercent:    v.Number("humidity_percent"),
			Timestamp:          ts,
		}
	},
}

// LogKind 디바이스 로그
var LogKind = RecordKind[models.LogEntry]{
	Name:  "log entry",
	Table: "device_logs",
	Fields: []FieldSpec{
		{Name: "device_id", MaxLen: models.MaxDeviceIDLength, Trim: true},
		{Name: "message", MaxLen: models.MaxLogMessageLength},
	},
	Filters:   []string{"device_id"},
	ListLimit: 200,
	Build: func(id int64, ts time.Time, v Values) models.LogEntry {
		return models.LogEntry{
			ID:        id,
			DeviceID:  v.String("device_id"),
			Message:   v.String("message"),
			Timestamp: ts,
		}
	},
}

// Validate 입력 검증
// 1) 누락 필드를 한 번에 보고 2) 숫자 변환 실패 3) 문자열 타입/길이
func (k RecordKind[T]) Validate(input map[string]any) (Values, error) {
	var missing []string
	for _, f := range k.Fields {
		if isMissing(input[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return Values{}, missingFields(missing...)
	}

	values := Values{strs: map[string]string{}, nums: map[string]float64{}}

	var notNumeric []string
	for _, f := range k.Fields {
		if !f.Numeric {
			continue
		}
		n, ok := toFloat(input[f.Name])
		if !ok {
			notNumeric = append(notNumeric, f.Name)
			continue
		}
		values.nums[f.Name] = n
	}
	if len(notNumeric) > 0 {
		return Values{}, invalidNumber(notNumeric...)
	}

	for _, f := range k.Fields {
		if f.Numeric {
			continue
		}
		s, ok := input[f.Name].(string)
		if !ok {
			return Values{}, invalidField(f.Name, "must be a string")
		}
		if f.Trim {
			s = strings.TrimSpace(s)
		}
		if f.MaxLen > 0 && utf8.RuneCountInString(s) > f.MaxLen {
			return Values{}, invalidField(f.Name, fmt.Sprintf("must be at most %d characters", f.MaxLen))
		}
		values.strs[f.Name] = s
	}

	return values, nil
}

// columns INSERT/SELECT 대상 컬럼 (id, created_at 제외)
func (k RecordKind[T]) columns() []string {
	cols := make([]string, len(k.Fields))
	for i, f := range k.Fields {
		cols[i] = f.Name
	}
	return cols
}

// allowsFilter 필터 컬럼 허용 여부
func (k RecordKind[T]) allowsFilter(name string) bool {
	for _, f := range k.Filters {
		if f == name {
			return true
		}
	}
	return false
}

// isMissing null, 부재, 공백 문자열은 누락으로 본다
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// toFloat JSON 숫자 또는 숫자 문자열을 float64 로 변환
func toFloat(v any) (float64, bool) {
	var (
		n   float64
		err error
	)
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		n, err = x.Float64()
	case string:
		n, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
