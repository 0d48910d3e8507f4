package scoring

import (
	"sort"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// RecomputeTeamScore sums every score of every participant in team
func RecomputeTeamScore(participants []*models.Participant, team string) float64 {
	var total float64
	for _, p := range participants {
		if p.Team == team {
			total += p.TotalScore()
		}
	}
	return total
}

// Standings ranks participants by total score, highest first. Ties keep the
// input order. At most limit standings are returned.
func Standings(participants []*models.Participant, limit int) []*models.ParticipantStanding {
	standings := make([]*models.ParticipantStanding, 0, len(participants))
	for _, p := range participants {
		standings = append(standings, &models.ParticipantStanding{
			ID:         p.ID,
			Name:       p.Name,
			Team:       p.Team,
			TotalScore: p.TotalScore(),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalScore > standings[j].TotalScore
	})

	if limit >= 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings
}
