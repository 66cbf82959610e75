package generation

import "errors"

var (
	ErrInvalidRequest      = errors.New("generation: invalid request")
	ErrInvalidGeneration   = errors.New("generation: result does not match the schema")
	ErrGenerationFailed    = errors.New("generation: prayer could not be generated")
	ErrGeneratorNotEnabled = errors.New("generation: no endpoint configured")
	ErrPrayerNotFound      = errors.New("generation: prayer not found")
)
