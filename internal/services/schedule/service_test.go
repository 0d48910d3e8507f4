package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/common/clock/mocks"
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	eventRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/event"
	eventMocks "github.com/KirkDiggler/sportsmeet/internal/repositories/event/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockEventRepo   *eventMocks.MockRepository
	mockClock       *mocks.MockClock
	scheduleService Service
	ctx             context.Context
	venue           *time.Location

	// Reusable test fixtures
	football *models.Event
}

func (s *ScheduleServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEventRepo = eventMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.venue = time.FixedZone("venue", 5*60*60+30*60)

	c, err := catalog.Default()
	s.Require().NoError(err)

	svc, err := New(&Config{
		EventRepo: s.mockEventRepo,
		Catalog:   c,
		Clock:     s.mockClock,
		Location:  s.venue,
	})
	s.Require().NoError(err)
	s.scheduleService = svc

	s.football = &models.Event{
		ID:       1,
		Category: models.CategoryA,
		Name:     "Football",
		Date:     "2024-03-01",
		Time:     "10:00",
		EndTime:  "11:00",
	}
}

func (s *ScheduleServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func (s *ScheduleServiceTestSuite) at(hour, minute int) time.Time {
	return time.Date(2024, 3, 1, hour, minute, 0, 0, s.venue)
}

func (s *ScheduleServiceTestSuite) TestGetEventState() {
	testCases := []struct {
		name string
		now  time.Time
		want models.EventState
	}{
		{"midway is live", s.at(10, 30), models.EventStateLive},
		{"a minute early is upcoming", s.at(9, 59), models.EventStateUpcoming},
		{"end is expired", s.at(11, 0), models.EventStateExpired},
		{"same instant in UTC is live", s.at(10, 30).UTC(), models.EventStateLive},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockEventRepo.EXPECT().
				GetEvent(s.ctx, &eventRepo.GetEventInput{EventID: 1}).
				Return(s.football, nil)
			s.mockClock.EXPECT().Now().Return(tc.now)

			out, err := s.scheduleService.GetEvent(s.ctx, &GetEventInput{EventID: 1})
			s.Require().NoError(err)
			s.Equal(tc.want, out.Event.State)
		})
	}
}

func (s *ScheduleServiceTestSuite) TestListEventsSortsAndFilters() {
	events := []*models.Event{
		{ID: 1, Category: models.CategoryA, Name: "Football", Date: "2024-03-02", Time: "09:00", EndTime: "10:00"},
		{ID: 2, Category: models.CategoryB, Name: "Chess", Date: "2024-03-01", Time: "10:00", EndTime: "12:00"},
		{ID: 3, Category: models.CategoryB, Name: "100 mtr", Date: "2024-03-01", Time: "08:00", EndTime: "08:30"},
		{ID: 4, Category: models.CategoryB, Name: "Shot Put", Date: "bad", Time: "08:00", EndTime: "08:30"},
	}
	s.mockEventRepo.EXPECT().ListEvents(s.ctx).Return(events, nil).Times(2)
	s.mockClock.EXPECT().Now().Return(s.at(10, 30)).Times(2)

	out, err := s.scheduleService.ListEvents(s.ctx, &ListEventsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 3)
	s.Equal(3, out.Events[0].ID)
	s.Equal(models.EventStateExpired, out.Events[0].State)
	s.Equal(2, out.Events[1].ID)
	s.Equal(models.EventStateLive, out.Events[1].State)
	s.Equal(1, out.Events[2].ID)
	s.Equal(models.EventStateUpcoming, out.Events[2].State)

	out, err = s.scheduleService.ListEvents(s.ctx, &ListEventsInput{State: models.EventStateLive})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 1)
	s.Equal(2, out.Events[0].ID)
}

func (s *ScheduleServiceTestSuite) TestListEventsUnknownState() {
	_, err := s.scheduleService.ListEvents(s.ctx, &ListEventsInput{State: "paused"})
	s.ErrorIs(err, ErrUnknownState)
}

func (s *ScheduleServiceTestSuite) TestCreateEvent() {
	s.mockEventRepo.EXPECT().
		CreateEvent(s.ctx, &eventRepo.CreateEventInput{Event: &models.Event{
			Category: models.CategoryB,
			Name:     "Long Jump",
			Date:     "2024-03-02",
			Time:     "14:00",
			EndTime:  "15:30",
		}}).
		DoAndReturn(func(_ context.Context, in *eventRepo.CreateEventInput) (*models.Event, error) {
			created := *in.Event
			created.ID = 5
			return &created, nil
		})

	out, err := s.scheduleService.CreateEvent(s.ctx, &CreateEventInput{
		Category: models.CategoryB,
		Name:     "Long Jump",
		Date:     "2024-03-02",
		Time:     "14:00",
		EndTime:  "15:30",
	})
	s.Require().NoError(err)
	s.Equal(5, out.Event.ID)
}

func (s *ScheduleServiceTestSuite) TestCreateEventValidation() {
	valid := func() *CreateEventInput {
		return &CreateEventInput{
			Category: models.CategoryA,
			Name:     "Volleyball",
			Date:     "2024-03-02",
			Time:     "14:00",
			EndTime:  "15:00",
		}
	}

	testCases := []struct {
		name   string
		modify func(*CreateEventInput)
		want   error
	}{
		{"unknown category", func(in *CreateEventInput) { in.Category = "Category C" }, ErrUnknownCategory},
		{"event from other category", func(in *CreateEventInput) { in.Name = "Chess" }, ErrUnknownEvent},
		{"bad date", func(in *CreateEventInput) { in.Date = "02/03/2024" }, ErrInvalidDate},
		{"bad start", func(in *CreateEventInput) { in.Time = "2pm" }, ErrInvalidTime},
		{"bad end", func(in *CreateEventInput) { in.EndTime = "25:00" }, ErrInvalidTime},
		{"end equals start", func(in *CreateEventInput) { in.EndTime = "14:00" }, ErrInvalidTimeRange},
		{"end before start", func(in *CreateEventInput) { in.EndTime = "13:00" }, ErrInvalidTimeRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := valid()
			tc.modify(input)
			_, err := s.scheduleService.CreateEvent(s.ctx, input)
			s.Require().ErrorIs(err, tc.want)
			s.Equal(errs.KindValidation, errs.KindOf(err))
		})
	}
}

func (s *ScheduleServiceTestSuite) TestUpdateEvent() {
	s.mockEventRepo.EXPECT().
		GetEvent(s.ctx, &eventRepo.GetEventInput{EventID: 1}).
		Return(s.football, nil)
	s.mockEventRepo.EXPECT().
		SaveEvent(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *eventRepo.SaveEventInput) error {
			s.Equal("12:00", in.Event.EndTime)
			s.Equal("Football", in.Event.Name)
			return nil
		})

	end := "12:00"
	out, err := s.scheduleService.UpdateEvent(s.ctx, &UpdateEventInput{EventID: 1, EndTime: &end})
	s.Require().NoError(err)
	s.Equal("12:00", out.Event.EndTime)
}

func (s *ScheduleServiceTestSuite) TestUpdateEventInvalidRange() {
	s.mockEventRepo.EXPECT().
		GetEvent(s.ctx, gomock.Any()).
		Return(s.football, nil)

	start := "11:30"
	_, err := s.scheduleService.UpdateEvent(s.ctx, &UpdateEventInput{EventID: 1, Time: &start})
	s.ErrorIs(err, ErrInvalidTimeRange)
}

func (s *ScheduleServiceTestSuite) TestUpdateEventNotFound() {
	s.mockEventRepo.EXPECT().
		GetEvent(s.ctx, gomock.Any()).
		Return(nil, eventRepo.ErrEventNotFound)

	name := "Cricket"
	_, err := s.scheduleService.UpdateEvent(s.ctx, &UpdateEventInput{EventID: 9, Name: &name})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *ScheduleServiceTestSuite) TestDeleteEventNotFound() {
	s.mockEventRepo.EXPECT().
		DeleteEvent(s.ctx, &eventRepo.DeleteEventInput{EventID: 9}).
		Return(eventRepo.ErrEventNotFound)

	err := s.scheduleService.DeleteEvent(s.ctx, &DeleteEventInput{EventID: 9})
	s.Require().ErrorIs(err, ErrEventNotFound)
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}
