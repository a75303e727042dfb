package routes

import (
	"net/http"

	"sensorhub/handlers"
	"sensorhub/middleware"
	"sensorhub/mirror"
	"sensorhub/services"

	_ "sensorhub/docs" // Swagger 문서

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options 라우터 설정
type Options struct {
	MaxUploadBytes int64
	CORSOrigins    []string
	Mirror         mirror.Mirror
}

// New 전체 라우트를 등록한 HTTP 핸들러를 만든다
func New(svc *services.Services, opts Options) http.Handler {
	m := opts.Mirror
	if m == nil {
		m = mirror.Noop{}
	}

	keyHandler := handlers.NewKeyHandler(svc.Keys)
	systemHandler := handlers.NewSystemHandler(svc.Keys, svc.Stats)
	sensorHandler := handlers.NewRecordHandler(svc.Sensors, "Sensor reading", m.SensorReading)
	temperatureHandler := handlers.NewRecordHandler(svc.Temperatures, "Temperature reading", m.TemperatureReading)
	logHandler := handlers.NewRecordHandler(svc.Logs, "Log entry", nil)
	screenshotHandler := handlers.NewScreenshotHandler(svc.Screenshots, opts.MaxUploadBytes)

	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.ChainMiddleware(h, middleware.LoggingMiddleware, middleware.SetJSONHeader)
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.ChainMiddleware(h,
			middleware.LoggingMiddleware,
			middleware.SetJSONHeader,
			middleware.APIKeyMiddleware(svc.Keys),
		)
	}

	router := mux.NewRouter()
	router.NotFoundHandler = public(handlers.NotFound)
	router.MethodNotAllowedHandler = public(handlers.MethodNotAllowed)

	// 인증 없음
	router.HandleFunc("/", public(systemHandler.Home)).Methods(http.MethodGet)
	router.HandleFunc("/health", public(systemHandler.Health)).Methods(http.MethodGet)
	router.HandleFunc("/create_api_key", public(keyHandler.CreateAPIKey)).Methods(http.MethodPost)

	// Swagger 문서
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// API 키 필요
	router.HandleFunc("/devices", protected(systemHandler.Devices)).Methods(http.MethodGet)
	router.HandleFunc("/stats", protected(systemHandler.Stats)).Methods(http.MethodGet)
	router.HandleFunc("/command", protected(systemHandler.Command)).Methods(http.MethodGet)
	router.HandleFunc("/data", protected(sensorHandler.LegacyCreate)).Methods(http.MethodPost)

	registerRecordRoutes(router, "/sensor-data", sensorHandler, protected)
	registerRecordRoutes(router, "/sensor/temperature", temperatureHandler, protected)
	registerRecordRoutes(router, "/logs", logHandler, protected)

	router.HandleFunc("/sensor/screenshot", protected(screenshotHandler.Upload)).Methods(http.MethodPost)
	router.HandleFunc("/sensor/screenshot", protected(screenshotHandler.List)).Methods(http.MethodGet)
	router.HandleFunc("/sensor/screenshot/latest", protected(screenshotHandler.Latest)).Methods(http.MethodGet)
	router.HandleFunc("/sensor/screenshot/{id:[0-9]+}", protected(screenshotHandler.Get)).Methods(http.MethodGet)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.APIKeyHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
	})
	return c.Handler(router)
}

// recordRoutes 레코드 종류별 핸들러
type recordRoutes interface {
	Create(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Latest(http.ResponseWriter, *http.Request)
}

func registerRecordRoutes(router *mux.Router, prefix string, h recordRoutes, wrap func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc(prefix, wrap(h.Create)).Methods(http.MethodPost)
	router.HandleFunc(prefix, wrap(h.List)).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/latest", wrap(h.Latest)).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/{id:[0-9]+}", wrap(h.Get)).Methods(http.MethodGet)
}
