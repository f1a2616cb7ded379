package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "64ad0f1c2b3a4d5e6f708195"

func TestGetCurrentUser(t *testing.T) {
	s := newAPIStub(t)
	s.handleJSON("GET /users/current", http.StatusOK, User{
		ID: userID, Name: "Olena", Email: "olena@example.com", DueDate: "2026-12-20",
	})

	u, err := s.client().GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Olena", u.Name)
	assert.Equal(t, "2026-12-20", u.DueDate)
}

func TestUpdateCurrentUserOmitsZeroFields(t *testing.T) {
	s := newAPIStub(t)
	var raw map[string]any
	s.handle("PATCH /users/current", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(User{ID: userID, Name: "Olena", DueDate: "2026-12-25"})
	})

	u, err := s.client().UpdateCurrentUser(context.Background(), UpdateUserRequest{DueDate: "2026-12-25"})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-25", u.DueDate)
	assert.Equal(t, map[string]any{"dueDate": "2026-12-25"}, raw, "untouched fields stay out of the payload")
}

func TestUploadAvatarSendsMultipartField(t *testing.T) {
	s := newAPIStub(t)
	s.handle("PATCH /users/current/avatars", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("avatar")
		require.NoError(t, err, "file arrives under the avatar field")
		defer func() { _ = f.Close() }()

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "photo.png", hdr.Filename)
		assert.Equal(t, "fake image bytes", string(content))
		_ = json.NewEncoder(w).Encode(User{ID: userID, AvatarURL: "https://cdn/avatars/1.png"})
	})

	u, err := s.client().UploadAvatar(context.Background(), "photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/avatars/1.png", u.AvatarURL)
}

func TestUploadAvatarRequiresFilename(t *testing.T) {
	s := newAPIStub(t)
	_, err := s.client().UploadAvatar(context.Background(), "", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, int64(0), s.requests.Load())
}
