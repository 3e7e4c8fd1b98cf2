package domain

import "errors"

var ErrCompanyNotFound = errors.New("company not found")
