package region

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// PostgresProvider looks up benchmarks in the region_benchmarks table, which
// the external regional-data sync job keeps populated. Expected schema:
//
//	CREATE TABLE region_benchmarks (
//	    city               TEXT NOT NULL,
//	    district           TEXT NOT NULL DEFAULT '',
//	    neighborhood       TEXT NOT NULL DEFAULT '',
//	    avg_price_per_area DOUBLE PRECISION NOT NULL,
//	    avg_dues           DOUBLE PRECISION NOT NULL,
//	    appreciation_rate  DOUBLE PRECISION NOT NULL,
//	    PRIMARY KEY (city, district, neighborhood)
//	);
//
// District- and city-level rows carry empty strings in the narrower columns.
type PostgresProvider struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresProvider creates a provider backed by the given database.
func NewPostgresProvider(db *sql.DB, logger *zap.Logger) *PostgresProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresProvider{db: db, logger: logger}
}

const benchmarkQuery = `SELECT avg_price_per_area, avg_dues, appreciation_rate
FROM region_benchmarks WHERE city = $1 AND district = $2 AND neighborhood = $3`

// Lookup walks the ladder from the most specific location to the city level
// and falls back to the country average when nothing matches. Only genuine
// database failures surface as errors; absent data never does.
func (p *PostgresProvider) Lookup(ctx context.Context, loc Location) (Benchmark, error) {
	loc = loc.Normalized()

	ladder := []struct {
		level        MatchLevel
		city         string
		district     string
		neighborhood string
	}{
		{MatchNeighborhood, loc.City, loc.District, loc.Neighborhood},
		{MatchDistrict, loc.City, loc.District, ""},
		{MatchCity, loc.City, "", ""},
	}

	for _, rung := range ladder {
		if rung.city == "" {
			break
		}
		if rung.level == MatchNeighborhood && rung.neighborhood == "" {
			continue
		}
		if rung.level == MatchDistrict && rung.district == "" {
			continue
		}

		var bench Benchmark
		err := p.db.QueryRowContext(ctx, benchmarkQuery, rung.city, rung.district, rung.neighborhood).
			Scan(&bench.AvgPricePerArea, &bench.AvgDues, &bench.AppreciationRatePercent)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return Benchmark{}, fmt.Errorf("region lookup failed at %s level: %w", rung.level, err)
		}
		bench.MatchLevel = rung.level
		return bench, nil
	}

	p.logger.Debug("no regional benchmark matched, using country fallback",
		zap.String("op", "region.Lookup"),
		zap.String("city", loc.City),
		zap.String("district", loc.District),
	)
	return CountryFallback(), nil
}
