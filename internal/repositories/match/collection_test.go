package match

import (
	"context"
	"testing"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
	"github.com/stretchr/testify/suite"
)

type CollectionRepositoryTestSuite struct {
	suite.Suite
	store document.Store
	repo  Repository
	ctx   context.Context
}

func (s *CollectionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = document.NewMemory()

	repo, err := NewCollection(s.ctx, &Config{
		Store: s.store,
		Seed: []models.Match{{
			ID:          1,
			Team1:       models.NewInnings("Usooludheen"),
			Team2:       models.NewInnings("Shareea"),
			MatchStatus: models.MatchStatusUpcoming,
		}},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestCollectionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionRepositoryTestSuite))
}

func (s *CollectionRepositoryTestSuite) TestSeeded() {
	matches, err := s.repo.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal("Shareea", matches[0].Team2.Name)
	s.Equal(models.InningsStatusYetToBat, matches[0].Team2.Status)
}

func (s *CollectionRepositoryTestSuite) TestSeedOnlyWhenAbsent() {
	s.Require().NoError(s.repo.DeleteMatch(s.ctx, &DeleteMatchInput{MatchID: 1}))

	reloaded, err := NewCollection(s.ctx, &Config{
		Store: s.store,
		Seed:  []models.Match{{ID: 1}},
	})
	s.Require().NoError(err)

	matches, err := reloaded.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *CollectionRepositoryTestSuite) TestCreateAndSave() {
	created, err := s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: &models.Match{
		Team1:       models.NewInnings("A"),
		Team2:       models.NewInnings("B"),
		MatchStatus: models.MatchStatusUpcoming,
	}})
	s.Require().NoError(err)
	s.Equal(2, created.ID)

	created.Team1.Runs = 45
	s.Require().NoError(s.repo.SaveMatches(s.ctx, &SaveMatchesInput{Matches: []*models.Match{created}}))

	err = s.repo.SaveMatches(s.ctx, &SaveMatchesInput{Matches: []*models.Match{{ID: 9}}})
	s.ErrorIs(err, ErrMatchNotFound)

	matches, err := s.repo.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Equal(45, matches[1].Team1.Runs)
}

func (s *CollectionRepositoryTestSuite) TestDeleteMissing() {
	err := s.repo.DeleteMatch(s.ctx, &DeleteMatchInput{MatchID: 7})
	s.ErrorIs(err, ErrMatchNotFound)
}
