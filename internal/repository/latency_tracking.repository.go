package repository

import (
	"database/sql"
	"fmt"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/db/models/postgres/public/table"
	"portfoliosim/internal/domain"

	"github.com/google/uuid"
)

type latencyTrackingRepositoryHandler struct {
	Db *sql.DB
}

// LatencyTrackingRepository stores the stage timings of a simulation run.
type LatencyTrackingRepository interface {
	Add(lt domain.Profile, requestID *uuid.UUID) error
}

func NewLatencyTrackingRepository(db *sql.DB) LatencyTrackingRepository {
	return latencyTrackingRepositoryHandler{db}
}

func (h latencyTrackingRepositoryHandler) Add(lt domain.Profile, requestID *uuid.UUID) error {
	bytes, err := lt.ToJsonBytes()
	if err != nil {
		return err
	}

	m := model.LatencyTracking{
		LatencyTrackingID: uuid.New(),
		ProcessingTimes:   string(bytes),
		RequestID:         requestID,
	}
	query := table.LatencyTracking.INSERT(table.LatencyTracking.AllColumns.Except(table.LatencyTracking.CreatedAt)).MODEL(m)

	_, err = query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert latency tracking: %w", err)
	}

	return nil
}
