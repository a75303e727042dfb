package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"sensorhub/models"
)

func TestRecordStore_CreateSensorReading(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(testDB(t), SensorKind)

	r, err := store.Create(ctx, map[string]any{"device_id": "d1", "sensor_type": "temp", "value": 21.5})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if r.ID == 0 || r.DeviceID != "d1" || r.SensorType != "temp" || r.Value != 21.5 {
		t.Errorf("Create() = %+v", r)
	}
	if r.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}

	got, err := store.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("Get() = %+v, want %+v", got, r)
	}
}

func TestRecordStore_MissingFieldsReportedTogether(t *testing.T) {
	store := NewRecordStore(testDB(t), SensorKind)

	tests := []struct {
		name  string
		input map[string]any
		want  []string
	}{
		{"value absent", map[string]any{"device_id": "d1", "sensor_type": "temp"}, []string{"value"}},
		{"all absent", map[string]any{}, []string{"device_id", "sensor_type", "value"}},
		{"null and blank", map[string]any{"device_id": nil, "sensor_type": "  ", "value": 1}, []string{"device_id", "sensor_type"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(context.Background(), tt.input)
			ve, ok := IsValidationError(err)
			if !ok {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if ve.Code != CodeMissingFields {
				t.Errorf("Code = %q, want %q", ve.Code, CodeMissingFields)
			}
			if !reflect.DeepEqual(ve.Fields, tt.want) {
				t.Errorf("Fields = %v, want %v", ve.Fields, tt.want)
			}
			for _, f := range tt.want {
				if !strings.Contains(ve.Message, f) {
					t.Errorf("Message %q does not name %q", ve.Message, f)
				}
			}
		})
	}
}

func TestRecordStore_NumericCoercion(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(testDB(t), TemperatureKind)

	tests := []struct {
		name    string
		temp    any
		wantErr bool
		want    float64
	}{
		{"float", 22.25, false, 22.25},
		{"json number", json.Number("19"), false, 19},
		{"numeric string", " 18.5 ", false, 18.5},
		{"int", 7, false, 7},
		{"text", "abc", true, 0},
		{"bool", true, true, 0},
		{"nan string", "NaN", true, 0},
		{"object", map[string]any{"v": 1}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := store.Create(ctx, map[string]any{
				"device_id":           "d1",
				"temperature_celsius": tt.temp,
				"humidity_percent":    "40",
			})
			if tt.wantErr {
				ve, ok := IsValidationError(err)
				if !ok || ve.Code != CodeInvalidNumber {
					t.Fatalf("Create() error = %v, want invalid_number", err)
				}
				if !reflect.DeepEqual(ve.Fields, []string{"temperature_celsius"}) {
					t.Errorf("Fields = %v", ve.Fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if r.TemperatureCelsius != tt.want || r.HumidityPercent != 40 {
				t.Errorf("Create() = %+v", r)
			}
		})
	}
}

func TestRecordStore_InvalidNumberDistinctFromMissing(t *testing.T) {
	store := NewRecordStore(testDB(t), SensorKind)

	_, missingErr := store.Create(context.Background(), map[string]any{"device_id": "d1", "sensor_type": "temp"})
	_, numberErr := store.Create(context.Background(), map[string]any{"device_id": "d1", "sensor_type": "temp", "value": "abc"})

	m, _ := IsValidationError(missingErr)
	n, _ := IsValidationError(numberErr)
	if m == nil || n == nil {
		t.Fatalf("expected validation errors, got %v / %v", missingErr, numberErr)
	}
	if m.Code == n.Code {
		t.Errorf("missing and invalid number share code %q", m.Code)
	}
	if n.Code != CodeInvalidNumber || !strings.Contains(n.Message, "value") {
		t.Errorf("invalid number error = %+v", n)
	}
}

func TestRecordStore_StringFieldRules(t *testing.T) {
	store := NewRecordStore(testDB(t), LogKind)
	ctx := context.Background()

	_, err := store.Create(ctx, map[string]any{"device_id": 12, "message": "hi"})
	if ve, ok := IsValidationError(err); !ok || ve.Code != CodeInvalidField {
		t.Errorf("non-string device_id error = %v, want invalid_field", err)
	}

	long := strings.Repeat("x", models.MaxLogMessageLength+1)
	_, err = store.Create(ctx, map[string]any{"device_id": "d1", "message": long})
	if ve, ok := IsValidationError(err); !ok || ve.Code != CodeInvalidField || ve.Fields[0] != "message" {
		t.Errorf("long message error = %v, want invalid_field on message", err)
	}

	exact := strings.Repeat("가", models.MaxLogMessageLength)
	if _, err := store.Create(ctx, map[string]any{"device_id": "d1", "message": exact}); err != nil {
		t.Errorf("message at limit error = %v", err)
	}
}

func TestRecordStore_IDsIncreaseAndListOrder(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(testDB(t), LogKind)

	var last int64
	for i := 0; i < 5; i++ {
		r, err := store.Create(ctx, map[string]any{"device_id": "d1", "message": fmt.Sprintf("m%d", i)})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if r.ID <= last {
			t.Fatalf("id %d not greater than %d", r.ID, last)
		}
		last = r.ID
	}

	list, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("List() len = %d, want 5", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID <= list[i].ID {
			t.Errorf("List() not in descending id order at %d", i)
		}
	}
	if list[0].Message != "m4" {
		t.Errorf("newest message = %q, want m4", list[0].Message)
	}
}

func TestListCaps(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		// create 는 i 번째 레코드를 만들고 id 를 돌려준다
		create func(ctx context.Context, svc *Services, i int) (int64, error)
		list   func(ctx context.Context, svc *Services) ([]int64, error)
	}{
		{
			name:  "sensor readings",
			limit: 100,
			create: func(ctx context.Context, svc *Services, i int) (int64, error) {
				r, err := svc.Sensors.Create(ctx, map[string]any{"device_id": "d1", "sensor_type": "t", "value": i})
				return r.ID, err
			},
			list: func(ctx context.Context, svc *Services) ([]int64, error) {
				rs, err := svc.Sensors.List(ctx, nil)
				ids := make([]int64, len(rs))
				for i, r := range rs {
					ids[i] = r.ID
				}
				return ids, err
			},
		},
		{
			name:  "temperature readings",
			limit: 100,
			create: func(ctx context.Context, svc *Services, i int) (int64, error) {
				r, err := svc.Temperatures.Create(ctx, map[string]any{"device_id": "d1", "temperature_celsius": i, "humidity_percent": 40})
				return r.ID, err
			},
			list: func(ctx context.Context, svc *Services) ([]int64, error) {
				rs, err := svc.Temperatures.List(ctx, nil)
				ids := make([]int64, len(rs))
				for i, r := range rs {
					ids[i] = r.ID
				}
				return ids, err
			},
		},
		{
			name:  "log entries",
			limit: 200,
			create: func(ctx context.Context, svc *Services, i int) (int64, error) {
				r, err := svc.Logs.Create(ctx, map[string]any{"device_id": "d1", "message": fmt.Sprintf("m%d", i)})
				return r.ID, err
			},
			list: func(ctx context.Context, svc *Services) ([]int64, error) {
				rs, err := svc.Logs.List(ctx, nil)
				ids := make([]int64, len(rs))
				for i, r := range rs {
					ids[i] = r.ID
				}
				return ids, err
			},
		},
		{
			name:  "screenshots",
			limit: 100,
			create: func(ctx context.Context, svc *Services, i int) (int64, error) {
				m, err := svc.Screenshots.Create(ctx, "d1", "png", []byte{byte(i)})
				if err != nil {
					return 0, err
				}
				return m.ID, nil
			},
			list: func(ctx context.Context, svc *Services) ([]int64, error) {
				ms, err := svc.Screenshots.List(ctx, "")
				ids := make([]int64, len(ms))
				for i, m := range ms {
					ids[i] = m.ID
				}
				return ids, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := New(testDB(t))

			var newest int64
			for i := 0; i < tt.limit+5; i++ {
				id, err := tt.create(ctx, svc, i)
				if err != nil {
					t.Fatalf("create #%d error = %v", i, err)
				}
				newest = id
			}

			ids, err := tt.list(ctx, svc)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(ids) != tt.limit {
				t.Fatalf("List() len = %d, want %d", len(ids), tt.limit)
			}
			if ids[0] != newest {
				t.Errorf("List()[0] id = %d, want newest %d", ids[0], newest)
			}
			if ids[len(ids)-1] != newest-int64(tt.limit)+1 {
				t.Errorf("List() oldest id = %d, want %d", ids[len(ids)-1], newest-int64(tt.limit)+1)
			}
		})
	}
}

func TestRecordStore_TrimsIdentifiersForFiltering(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(testDB(t), SensorKind)

	r, err := store.Create(ctx, map[string]any{"device_id": " d1 ", "sensor_type": "\ttemp ", "value": 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if r.DeviceID != "d1" || r.SensorType != "temp" {
		t.Errorf("Create() stored device_id=%q sensor_type=%q, want trimmed", r.DeviceID, r.SensorType)
	}

	for _, filter := range []Filter{
		{"device_id": r.DeviceID},
		{"device_id": " d1 "},
		{"device_id": "d1", "sensor_type": r.SensorType},
	} {
		list, err := store.List(ctx, filter)
		if err != nil || len(list) != 1 {
			t.Errorf("List(%v) = %d records, %v; want 1", filter, len(list), err)
		}
		if _, err := store.Latest(ctx, filter); err != nil {
			t.Errorf("Latest(%v) error = %v", filter, err)
		}
	}

	logs := NewRecordStore(testDB(t), LogKind)
	entry, err := logs.Create(ctx, map[string]any{"device_id": "d1", "message": "  indented  "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if entry.Message != "  indented  " {
		t.Errorf("message = %q, want stored verbatim", entry.Message)
	}
}

func TestRecordStore_DeviceIDLimitCountsCharacters(t *testing.T) {
	store := NewRecordStore(testDB(t), LogKind)
	ctx := context.Background()

	label := strings.Repeat("센", models.MaxDeviceIDLength)
	if _, err := store.Create(ctx, map[string]any{"device_id": label, "message": "m"}); err != nil {
		t.Errorf("device_id at limit error = %v", err)
	}
	_, err := store.Create(ctx, map[string]any{"device_id": label + "서", "message": "m"})
	if ve, ok := IsValidationError(err); !ok || ve.Code != CodeInvalidField {
		t.Errorf("device_id over limit error = %v, want invalid_field", err)
	}
}

func TestRecordStore_Filters(t *testing.T) {
	ctx := context.Background()
	sensors := NewRecordStore(testDB(t), SensorKind)

	seed := []map[string]any{
		{"device_id": "d1", "sensor_type": "temp", "value": 1},
		{"device_id": "d2", "sensor_type": "temp", "value": 2},
		{"device_id": "d1", "sensor_type": "hum", "value": 3},
	}
	for _, in := range seed {
		if _, err := sensors.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tests := []struct {
		filter Filter
		want   []float64
	}{
		{nil, []float64{3, 2, 1}},
		{Filter{"device_id": "d1"}, []float64{3, 1}},
		{Filter{"sensor_type": "temp"}, []float64{2, 1}},
		{Filter{"device_id": "d1", "sensor_type": "temp"}, []float64{1}},
		{Filter{"device_id": "nobody"}, []float64{}},
		{Filter{"device_id": ""}, []float64{3, 2, 1}},
	}
	for _, tt := range tests {
		list, err := sensors.List(ctx, tt.filter)
		if err != nil {
			t.Fatalf("List(%v) error = %v", tt.filter, err)
		}
		got := make([]float64, 0, len(list))
		for _, r := range list {
			got = append(got, r.Value)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("List(%v) values = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestRecordStore_SensorTypeFilterIgnoredForOtherKinds(t *testing.T) {
	ctx := context.Background()
	temps := NewRecordStore(testDB(t), TemperatureKind)

	if _, err := temps.Create(ctx, map[string]any{"device_id": "d1", "temperature_celsius": 1, "humidity_percent": 2}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	list, err := temps.List(ctx, Filter{"sensor_type": "temp"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() len = %d, want 1", len(list))
	}
}

func TestRecordStore_LatestMatchesListHead(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(testDB(t), SensorKind)

	if _, err := store.Latest(ctx, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Latest() on empty store error = %v, want ErrNotFound", err)
	}

	for i, dev := range []string{"d1", "d2", "d1", "d3"} {
		if _, err := store.Create(ctx, map[string]any{"device_id": dev, "sensor_type": "t", "value": i}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	for _, filter := range []Filter{nil, {"device_id": "d1"}, {"device_id": "d2"}, {"device_id": "none"}} {
		list, err := store.List(ctx, filter)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		latest, err := store.Latest(ctx, filter)
		if len(list) == 0 {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Latest(%v) error = %v, want ErrNotFound", filter, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Latest(%v) error = %v", filter, err)
		}
		if !reflect.DeepEqual(latest, list[0]) {
			t.Errorf("Latest(%v) = %+v, want %+v", filter, latest, list[0])
		}
	}
}

func TestRecordStore_GetNotFound(t *testing.T) {
	store := NewRecordStore(testDB(t), LogKind)
	if _, err := store.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestRecordStore_Count(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(testDB(t), LogKind)
	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, map[string]any{"device_id": "d", "message": "m"}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	n, err := store.Count(ctx)
	if err != nil || n != 3 {
		t.Errorf("Count() = %d, %v; want 3", n, err)
	}
}
