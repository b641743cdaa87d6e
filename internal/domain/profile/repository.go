package profile

import "context"

// ProfileRepository loads the immutable reference collections.
type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]EmployeeProfile, error)
	ListOrgUnits(ctx context.Context) ([]OrgUnit, error)
}
