package fixture

import "errors"

// ErrUnknownFixture is returned by Run and Describe for names not in the registry.
var ErrUnknownFixture = errors.New("fixture: unknown fixture")

// ErrInvalidInput is returned when a fixture input is outside its domain.
var ErrInvalidInput = errors.New("fixture: invalid input")
