package repository

import (
	"database/sql"
	"fmt"

	"portfoliosim/internal/db/models/postgres/public/model"
	. "portfoliosim/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// ApiRequestRepository keeps an audit row per HTTP request. The caller
// picks the request ID so latency rows can point at it.
type ApiRequestRepository interface {
	Add(ar model.APIRequest) (*model.APIRequest, error)
	Update(ar model.APIRequest) error
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{Db: db}
}

func (h apiRequestRepositoryHandler) Add(ar model.APIRequest) (*model.APIRequest, error) {
	query := APIRequest.
		INSERT(APIRequest.AllColumns).
		MODEL(ar).
		RETURNING(APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(h.Db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return out, nil
}

func (h apiRequestRepositoryHandler) Update(ar model.APIRequest) error {
	query := APIRequest.
		UPDATE(APIRequest.UserID, APIRequest.DurationMs, APIRequest.StatusCode, APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
