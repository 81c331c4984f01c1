package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
	l2_service "portfoliosim/internal/service/l2"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                        *sql.DB
	SimulationService         l2_service.SimulationService
	BenchmarkRepository       repository.BenchmarkRepository
	StockStatsRepository      repository.StockStatsRepository
	LeaderboardRepository     repository.LeaderboardRepository
	GptRepository             repository.GptRepository
	LatencyTrackingRepository repository.LatencyTrackingRepository
	ApiRequestRepository      repository.ApiRequestRepository
	JwtDecodeToken            string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(recoveryMiddleware())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliosim"})
	})
	router.POST("/simulate", m.simulate)
	router.GET("/benchmark", m.benchmark)
	router.GET("/stockStats", m.stockStats)
	router.GET("/categories", m.categories)
	router.POST("/explain", m.explain)
	router.GET("/leaderboard", m.getLeaderboard)
	router.GET("/usageStats", m.usageStats)
	router.POST("/leaderboard", m.authMiddleware(), m.addLeaderboardEntry)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorf("%s %s failed: %s", c.Request.Method, c.Request.URL.Path, err.Error())
	} else {
		log.Infof("%s %s rejected: %s", c.Request.Method, c.Request.URL.Path, err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnSimulationError maps caller mistakes to 400 and everything else
// to 500.
func returnSimulationError(err error, c *gin.Context) {
	if domain.IsValidationError(err) || errors.Is(err, domain.ErrUnknownBenchmarkYear) {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	returnErrorJson(err, c)
}

func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "an unexpected error occurred",
		})
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddleware tags the request with an ID and puts a logger
// carrying it on the request context. When an api request repository is
// configured, the request and response are also stored under that ID.
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	c.Set("requestID", requestID.String())
	c.Header("X-Request-ID", requestID.String())

	ctx, log := logger.WithRequestID(c.Request.Context(), requestID.String())
	c.Request = c.Request.WithContext(ctx)

	start := time.Now().UTC()

	var stored *model.APIRequest
	var w *responseBodyWriter
	if m.ApiRequestRepository != nil {
		w = &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		body, err := c.GetRawData()
		if err != nil {
			log.Warnf("failed to read request body: %s", err.Error())
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		stored, err = m.ApiRequestRepository.Add(model.APIRequest{
			RequestID:   requestID,
			IPAddress:   strPtr(c.ClientIP()),
			Method:      c.Request.Method,
			Route:       c.Request.URL.Path,
			RequestBody: strPtr(string(body)),
			StartTs:     start,
		})
		if err != nil {
			log.Warnf("failed to store api request: %s", err.Error())
		}
	}

	c.Next()

	durationMs := time.Since(start).Milliseconds()
	log.Infow("handled request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"durationMs", durationMs,
		"ip", c.ClientIP(),
	)

	if stored != nil {
		if userID := c.GetString("userAccountID"); userID != "" {
			stored.UserID = &userID
		}
		stored.DurationMs = &durationMs
		status := int32(c.Writer.Status())
		stored.StatusCode = &status
		stored.ResponseBody = strPtr(w.body.String())

		if err := m.ApiRequestRepository.Update(*stored); err != nil {
			log.Warnf("failed to update api request: %s", err.Error())
		}
	}
}

func strPtr(s string) *string {
	return &s
}

func requestIDFromContext(c *gin.Context) *uuid.UUID {
	requestIDAny, ok := c.Get("requestID")
	if !ok {
		return nil
	}
	requestIDStr, ok := requestIDAny.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(requestIDStr)
	if err != nil {
		return nil
	}
	return &id
}
