package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
)

// CreateDefaultData inserts the senate division reference rows if they don't
// exist. Assignments, slot requirements, and faculty reference them by short
// name, so the divisions must exist before any other writes.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	divisionRepo := repositories.NewSenateDivisionRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default senate divisions...")

	divisions := []*models.SenateDivision{
		{ShortName: "AO", Name: "All Other Faculty"},
		{ShortName: "BUS", Name: "School of Business Administration"},
		{ShortName: "CLAS-AL", Name: "College of Liberal Arts and Sciences, Arts and Letters"},
		{ShortName: "CLAS-SCI", Name: "College of Liberal Arts and Sciences, Sciences"},
		{ShortName: "CLAS-SS", Name: "College of Liberal Arts and Sciences, Social Sciences"},
		{ShortName: "COTA", Name: "College of the Arts"},
		{ShortName: "CUPA", Name: "College of Urban and Public Affairs"},
		{ShortName: "EC", Name: "Education and Counseling"},
		{ShortName: "MCECS", Name: "Maseeh College of Engineering and Computer Science"},
		{ShortName: "OI", Name: "Other Instructional"},
		{ShortName: "SSW", Name: "School of Social Work"},
		{ShortName: "UNST", Name: "University Studies"},
	}

	var finalErr error
	for _, division := range divisions {
		if err := divisionRepo.Create(ctx, division); err != nil {
			lgr.Error().Err(err).Str("shortName", division.ShortName).Msg("Error creating senate division")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default senate divisions ready")
	}
	return finalErr
}
