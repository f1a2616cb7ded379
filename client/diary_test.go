package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	entryID   = "64ad0f1c2b3a4d5e6f708192"
	emotionID = "64ad0f1c2b3a4d5e6f708193"
)

func validForm() DiaryForm {
	return DiaryForm{Title: "first kick", Description: "felt it this morning", Emotions: []string{emotionID}}
}

func TestListDiarySendsPaginationParams(t *testing.T) {
	s := newAPIStub(t)
	var query string
	s.handle("GET /diary", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(DiaryListResponse{
			DiaryNotes: []DiaryEntry{{ID: entryID, Title: "first kick"}},
			Page:       2, TotalPages: 3, TotalCount: 17,
		})
	})

	lr, err := s.client().ListDiary(context.Background(), DiaryListParams{Page: 2, Limit: 8, SortOrder: SortDesc})
	require.NoError(t, err)
	assert.Equal(t, "limit=8&page=2&sortOrder=desc", query)
	assert.Equal(t, 2, lr.Page)
	assert.Equal(t, 3, lr.TotalPages)
	require.Len(t, lr.DiaryNotes, 1)
	assert.Equal(t, "first kick", lr.DiaryNotes[0].Title)
}

func TestListDiaryRejectsBadSortOrder(t *testing.T) {
	s := newAPIStub(t)
	_, err := s.client().ListDiary(context.Background(), DiaryListParams{SortOrder: "newest"})
	require.Error(t, err)
	assert.Equal(t, int64(0), s.requests.Load(), "invalid input never reaches the network")
}

func TestCreateDiaryEntry(t *testing.T) {
	s := newAPIStub(t)
	var got DiaryForm
	s.handle("POST /diary", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(DiaryEntry{ID: entryID, Title: got.Title})
	})

	e, err := s.client().CreateDiaryEntry(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, entryID, e.ID)
	assert.Equal(t, []string{emotionID}, got.Emotions, "payload carries emotion IDs, not titles")
}

func TestCreateDiaryEntryRejectsInvalidForm(t *testing.T) {
	s := newAPIStub(t)
	c := s.client()

	cases := []struct {
		name string
		form DiaryForm
	}{
		{"empty title", DiaryForm{Description: "d", Emotions: []string{emotionID}}},
		{"empty description", DiaryForm{Title: "t", Emotions: []string{emotionID}}},
		{"no emotions", DiaryForm{Title: "t", Description: "d"}},
		{"bad emotion id", DiaryForm{Title: "t", Description: "d", Emotions: []string{"not-hex"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.CreateDiaryEntry(context.Background(), tc.form)
			require.Error(t, err)
		})
	}
	assert.Equal(t, int64(0), s.requests.Load())
}

func TestUpdateDiaryEntryUsesPut(t *testing.T) {
	s := newAPIStub(t)
	s.handle("PUT /diary/"+entryID, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(DiaryEntry{ID: entryID, Title: "edited"})
	})

	e, err := s.client().UpdateDiaryEntry(context.Background(), entryID, validForm())
	require.NoError(t, err)
	assert.Equal(t, "edited", e.Title)
}

func TestDeleteDiaryEntryAcceptsOKAndNoContent(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		s := newAPIStub(t)
		s.handle("DELETE /diary/"+entryID, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		require.NoError(t, s.client().DeleteDiaryEntry(context.Background(), entryID))
	}
}

func TestDiaryOperationsRejectMalformedID(t *testing.T) {
	s := newAPIStub(t)
	c := s.client()

	_, err := c.GetDiaryEntry(context.Background(), "123")
	require.Error(t, err)
	err = c.DeleteDiaryEntry(context.Background(), "zz")
	require.Error(t, err)
	_, err = c.PatchDiaryEntry(context.Background(), entryID, nil)
	require.Error(t, err, "patch requires at least one field")
	assert.Equal(t, int64(0), s.requests.Load())
}

func TestListEmotionsPinnedContract(t *testing.T) {
	s := newAPIStub(t)
	s.handleJSON("GET /emotions", http.StatusOK, EmotionsResponse{
		Emotions: []Emotion{{ID: emotionID, Title: "joyful"}},
		Page:     1, TotalPages: 1, TotalCount: 1,
	})

	er, err := s.client().ListEmotions(context.Background(), EmotionsParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, er.Emotions, 1)
	assert.Equal(t, "joyful", er.Emotions[0].Title)
}

func TestListEmotionsRejectsDeviatingShape(t *testing.T) {
	s := newAPIStub(t)
	// A bare array instead of the pinned envelope must error, not be coerced.
	s.handle("GET /emotions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := s.client().ListEmotions(context.Background(), EmotionsParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emotions")
}
