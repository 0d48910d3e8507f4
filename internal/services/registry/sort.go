package registry

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// SortParticipants orders participants by team, then by chess number. Numeric
// chess numbers compare numerically and come before non-numeric ones.
func SortParticipants(participants []*models.Participant) {
	sort.SliceStable(participants, func(i, j int) bool {
		a, b := participants[i], participants[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return chessLess(a.ChessNumber, b.ChessNumber)
	})
}

func chessLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
