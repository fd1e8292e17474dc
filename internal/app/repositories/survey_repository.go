package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// SurveyRepository handles committee-interest survey rows
type SurveyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSurveyRepository creates a new SurveyRepository
func NewSurveyRepository(db *pgxpool.Pool) *SurveyRepository {
	return &SurveyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a survey response
func (r *SurveyRepository) Create(ctx context.Context, response *models.SurveyResponse) error {
	sql, args, err := r.sb.Insert("survey_data").
		Columns("survey_date", "email", "is_interested", "expertise").
		Values(response.SurveyDate, response.Email, response.IsInterested, response.Expertise).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create survey query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err, "") {
			return apperrors.NewConflictError("survey response for this date and faculty member already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).Str("email", response.Email).Msg("Error creating survey response")
		return dberrors.Translate(err)
	}

	return nil
}

// Update rewrites a survey response identified by (survey date, email)
func (r *SurveyRepository) Update(ctx context.Context, response *models.SurveyResponse) error {
	sql, args, err := r.sb.Update("survey_data").
		Set("is_interested", response.IsInterested).
		Set("expertise", response.Expertise).
		Where(squirrel.Eq{
			"survey_date": response.SurveyDate,
			"email":       response.Email,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update survey query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByYearAndEmail retrieves the survey response a faculty member filed in
// a given year
func (r *SurveyRepository) GetByYearAndEmail(ctx context.Context, year int, email string) (*models.SurveyResponse, error) {
	query := `
		SELECT survey_date, email, is_interested, expertise
		FROM survey_data
		WHERE date_part('year', survey_date) = $1 AND email = $2
	`

	response := &models.SurveyResponse{}
	err := r.db.QueryRow(ctx, query, year, email).Scan(
		&response.SurveyDate,
		&response.Email,
		&response.IsInterested,
		&response.Expertise,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, dberrors.Translate(err)
	}

	return response, nil
}
