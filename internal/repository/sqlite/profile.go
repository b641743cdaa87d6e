package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

type profileRepository struct {
	store *Store
}

func NewProfileRepository(store *Store) profile.ProfileRepository {
	return &profileRepository{store: store}
}

// ListProfiles implements profile.ProfileRepository.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]profile.EmployeeProfile, error) {
	query := `
		SELECT employee_id, department, ip_address
		FROM employee_profiles
		ORDER BY employee_id
	`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.EmployeeProfile
	for rows.Next() {
		var (
			p    profile.EmployeeProfile
			dept string
		)
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

// ListOrgUnits implements profile.ProfileRepository. The members column
// holds a JSON array of employee ID strings.
func (r *profileRepository) ListOrgUnits(ctx context.Context) ([]profile.OrgUnit, error) {
	query := `
		SELECT minister_id, members
		FROM rd_org_units
		ORDER BY minister_id
	`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query org units: %w", err)
	}
	defer rows.Close()

	var units []profile.OrgUnit
	for rows.Next() {
		var (
			unit    profile.OrgUnit
			members string
		)
		if err := rows.Scan(&unit.MinisterID, &members); err != nil {
			return nil, fmt.Errorf("failed to scan org unit: %w", err)
		}
		if err := json.Unmarshal([]byte(members), &unit.Members); err != nil {
			return nil, fmt.Errorf("failed to decode org unit members: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read org units: %w", err)
	}

	return units, nil
}
