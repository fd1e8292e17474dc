package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// AssociationRepository handles faculty-department membership rows
type AssociationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssociationRepository creates a new AssociationRepository
func NewAssociationRepository(db *pgxpool.Pool) *AssociationRepository {
	return &AssociationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create links a faculty member to a department
func (r *AssociationRepository) Create(ctx context.Context, association *models.DepartmentAssociation) error {
	sql, args, err := r.sb.Insert("department_associations").
		Columns("email", "department_id").
		Values(association.Email, association.DepartmentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create association query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err, "") {
			return apperrors.NewConflictError("faculty member is already associated with this department")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).Str("email", association.Email).Msg("Error creating department association")
		return dberrors.Translate(err)
	}

	return nil
}

// Update moves a faculty member's association to a different department
func (r *AssociationRepository) Update(ctx context.Context, email string, oldDepartmentID, newDepartmentID int64) error {
	sql, args, err := r.sb.Update("department_associations").
		Set("department_id", newDepartmentID).
		Where(squirrel.Eq{
			"email":         email,
			"department_id": oldDepartmentID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update association query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByFaculty returns a faculty member's department memberships grouped
// into a single record. ErrNotFound when no associations exist.
func (r *AssociationRepository) GetByFaculty(ctx context.Context, email string) (*models.FacultyDepartments, error) {
	sql, args, err := r.sb.Select("department_id").
		From("department_associations").
		Where(squirrel.Eq{"email": email}).
		OrderBy("department_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get associations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var departmentIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, dberrors.Translate(err)
		}
		departmentIDs = append(departmentIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	if len(departmentIDs) == 0 {
		return nil, ErrNotFound
	}

	return &models.FacultyDepartments{Email: email, DepartmentIDs: departmentIDs}, nil
}

// GetByDepartment returns the member emails associated with a department
// grouped into a single record. ErrNotFound when no associations exist.
func (r *AssociationRepository) GetByDepartment(ctx context.Context, departmentID int64) (*models.DepartmentFaculty, error) {
	sql, args, err := r.sb.Select("email").
		From("department_associations").
		Where(squirrel.Eq{"department_id": departmentID}).
		OrderBy("email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get associations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, dberrors.Translate(err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	if len(emails) == 0 {
		return nil, ErrNotFound
	}

	return &models.DepartmentFaculty{DepartmentID: departmentID, Emails: emails}, nil
}
