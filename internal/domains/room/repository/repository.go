package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

// ErrStatusConflict reports a guarded status transition that matched no row,
// meaning the room was not in the expected status anymore.
var ErrStatusConflict = errors.New("room status conflict")

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TransitionStatusTx(ctx context.Context, sqltx *sqlx.Tx, roomID, fromStatus, toStatus string, fields map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// TransitionStatusTx moves a room from one status to another only when the
// room is still in fromStatus. The status check is part of the UPDATE's WHERE
// clause, so two transactions racing for the same room cannot both win: the
// loser matches zero rows and gets ErrStatusConflict.
func (r *repositoryImpl) TransitionStatusTx(ctx context.Context, sqltx *sqlx.Tx, roomID, fromStatus, toStatus string, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.TransitionStatusTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :to_status, modified_at = :modified_at, modified_by = :modified_by WHERE %s = :id AND %s = :from_status",
		model.TableName, model.FieldStatus, model.FieldID, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          roomID,
		"from_status": fromStatus,
		"to_status":   toStatus,
		"modified_at": fields[constant.FieldModifiedAt],
		"modified_by": fields[constant.FieldModifiedBy],
	}

	result, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to transition room status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to transition room status: %w", err)
	}

	if rows == 0 {
		return ErrStatusConflict
	}

	return nil
}
