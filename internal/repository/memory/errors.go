package memory

import (
	"fmt"

	"exercise-tracker/internal/entities"
)

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", entities.ErrStorage, op, err)
}
