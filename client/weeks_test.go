package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greetingFixture(hint string) WeekGreeting {
	return WeekGreeting{
		CurWeekToPregnant:  24,
		DaysBeforePregnant: 112,
		BabyToday:          BabyToday{BabySize: 30.0, BabyWeight: 600, BabyActivity: "kicking", Image: "corn.png"},
		MomHint:            hint,
	}
}

func TestGetBabyTodayPicksEndpointBySession(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		s := newAPIStub(t)
		s.sessionAlive(true)
		s.handleJSON("GET /weeks/greeting", http.StatusOK, greetingFixture("rest"))

		b, err := s.client().GetBabyToday(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "kicking", b.BabyActivity)
	})

	t.Run("anonymous", func(t *testing.T) {
		s := newAPIStub(t)
		s.sessionAlive(false)
		s.handleJSON("GET /weeks/greeting/public", http.StatusOK, greetingFixture(""))

		b, err := s.client().GetBabyToday(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "kicking", b.BabyActivity)
	})
}

func TestGetBabyWeekValidatesRange(t *testing.T) {
	s := newAPIStub(t)
	c := s.client()
	for _, week := range []int{0, -3, 43} {
		_, err := c.GetBabyWeek(context.Background(), week)
		require.Error(t, err)
	}
	assert.Equal(t, int64(0), s.requests.Load())
}

func TestGetMomWeek(t *testing.T) {
	s := newAPIStub(t)
	s.handleJSON("GET /weeks/24/mom", http.StatusOK, AboutMom{
		Feelings: Feelings{States: []string{"tired"}, SensationDescr: "ligament aches"},
		ComfortTips: []ComfortTip{
			{Category: "sleep", Tip: "side pillow"},
			{Category: "food", Tip: "small meals"},
		},
	})

	m, err := s.client().GetMomWeek(context.Background(), 24)
	require.NoError(t, err)
	assert.Equal(t, []string{"tired"}, m.Feelings.States)
	assert.Len(t, m.ComfortTips, 2)
}

func TestGetMomTipReturnsFirstTip(t *testing.T) {
	s := newAPIStub(t)
	s.handleJSON("GET /weeks/24/mom", http.StatusOK, AboutMom{
		ComfortTips: []ComfortTip{{Category: "sleep", Tip: "side pillow"}, {Category: "food", Tip: "small meals"}},
	})

	tip, err := s.client().GetMomTip(context.Background(), 24)
	require.NoError(t, err)
	assert.Equal(t, "side pillow", tip.Tip)
}

func TestGetMomTipErrorsWhenEmpty(t *testing.T) {
	s := newAPIStub(t)
	s.handleJSON("GET /weeks/24/mom", http.StatusOK, AboutMom{})

	_, err := s.client().GetMomTip(context.Background(), 24)
	require.Error(t, err)
}
