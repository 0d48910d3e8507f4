package registry

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
)

func validatePrograms(c *catalog.Catalog, programs []string) error {
	if len(programs) == 0 {
		return ErrNoPrograms
	}

	seen := make(map[string]bool, len(programs))
	for _, program := range programs {
		if _, ok := c.CategoryOf(program); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProgram, program)
		}
		if seen[program] {
			return fmt.Errorf("%w: %q", ErrDuplicateProgram, program)
		}
		seen[program] = true
	}

	if n := c.CountCapped(programs); n > c.CategoryCap {
		return fmt.Errorf("%w: %d programs from %s selected, at most %d allowed",
			ErrCategoryLimitExceeded, n, c.CappedCategory, c.CategoryCap)
	}
	return nil
}

func validateChessNumber(c *catalog.Catalog, team, chessNumber string) error {
	if chessNumber == "" {
		return ErrMissingChessNumber
	}
	if err := c.CheckChessNumber(team, chessNumber); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidChessNumber, err)
	}
	return nil
}

func required(value string, missing error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", missing
	}
	return value, nil
}
