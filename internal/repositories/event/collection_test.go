package event

import (
	"context"
	"testing"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
	"github.com/stretchr/testify/suite"
)

type CollectionRepositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *CollectionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	repo, err := NewCollection(s.ctx, &Config{Store: document.NewMemory()})
	s.Require().NoError(err)
	s.repo = repo
}

func TestCollectionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionRepositoryTestSuite))
}

func (s *CollectionRepositoryTestSuite) TestCrud() {
	created, err := s.repo.CreateEvent(s.ctx, &CreateEventInput{Event: &models.Event{
		Category: models.CategoryB,
		Name:     "Chess",
		Date:     "2024-03-01",
		Time:     "10:00",
		EndTime:  "11:00",
	}})
	s.Require().NoError(err)
	s.Equal(1, created.ID)

	created.EndTime = "12:00"
	s.Require().NoError(s.repo.SaveEvent(s.ctx, &SaveEventInput{Event: created}))

	got, err := s.repo.GetEvent(s.ctx, &GetEventInput{EventID: 1})
	s.Require().NoError(err)
	s.Equal("12:00", got.EndTime)

	s.Require().NoError(s.repo.DeleteEvent(s.ctx, &DeleteEventInput{EventID: 1}))
	events, err := s.repo.ListEvents(s.ctx)
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *CollectionRepositoryTestSuite) TestMissingEvent() {
	err := s.repo.SaveEvent(s.ctx, &SaveEventInput{Event: &models.Event{ID: 3}})
	s.ErrorIs(err, ErrEventNotFound)

	err = s.repo.DeleteEvent(s.ctx, &DeleteEventInput{EventID: 3})
	s.ErrorIs(err, ErrEventNotFound)

	_, err = s.repo.GetEvent(s.ctx, &GetEventInput{EventID: 3})
	s.ErrorIs(err, ErrEventNotFound)
}
