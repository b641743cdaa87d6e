package attendance

import "errors"

var (
	ErrUnknownDepartment = errors.New("unknown department")
)
