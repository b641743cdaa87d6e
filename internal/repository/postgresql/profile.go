package postgresql

import (
	"context"
	"fmt"

	"github.com/seclens/insight-backend-go/internal/domain/profile"
	"github.com/seclens/insight-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

// ListProfiles implements profile.ProfileRepository.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]profile.EmployeeProfile, error) {
	query := `
		SELECT employee_id, department, ip_address
		FROM employee_profiles
		ORDER BY employee_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.EmployeeProfile
	for rows.Next() {
		var p profile.EmployeeProfile
		var dept string
		if err := rows.Scan(&p.EmployeeID, &dept, &p.IPAddress); err != nil {
			return nil, fmt.Errorf("failed to scan employee profile: %w", err)
		}
		p.Department = profile.Department(dept)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee profiles: %w", err)
	}

	return profiles, nil
}

// ListOrgUnits implements profile.ProfileRepository.
func (r *profileRepository) ListOrgUnits(ctx context.Context) ([]profile.OrgUnit, error) {
	query := `
		SELECT minister_id, members
		FROM rd_org_units
		ORDER BY minister_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query org units: %w", err)
	}
	defer rows.Close()

	var units []profile.OrgUnit
	for rows.Next() {
		var unit profile.OrgUnit
		if err := rows.Scan(&unit.MinisterID, &unit.Members); err != nil {
			return nil, fmt.Errorf("failed to scan org unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read org units: %w", err)
	}

	return units, nil
}
