package mediaservice

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/wayfarer/internal/common"
)

type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) DeleteByURL(ctx context.Context, fileURL string) error {
	args := m.Called(fileURL)
	return args.Error(0)
}

func strptr(s string) *string {
	return &s
}

func setupTestEnvironment(t *testing.T) (*MediaService, *MockRemover, *bytes.Buffer, func()) {
	db := common.TestDB("file://../../migrations", t)
	remover := new(MockRemover)
	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(logs, nil))

	cleanup := func() {
		for _, table := range tables {
			_, err := db.Exec("DELETE FROM " + table.name)
			assert.NoError(t, err)
		}
		logs.Reset()
	}

	return NewMediaService(db, remover, logger), remover, logs, cleanup
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func TestParseMediaType(t *testing.T) {
	typ, err := ParseMediaType("video")
	require.NoError(t, err)
	assert.Equal(t, MediaVideo, typ)

	_, err = ParseMediaType("audio")
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"type": "must be one of: image video"}}, err)
}

func TestCreateMedia(t *testing.T) {
	s, _, _, cleanup := setupTestEnvironment(t)
	fixed := time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	testCases := []struct {
		name     string
		input    *MediaInput
		wantErr  error
		wantDate time.Time
	}{
		{
			name:     "image with date",
			input:    &MediaInput{Type: "image", URL: "https://cdn.example.com/1-a.jpg", Location: "Kyoto", Date: "2024-03-01", Country: strptr("Japan")},
			wantDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "video without date",
			input:    &MediaInput{Type: "video", URL: "https://cdn.example.com/2-b.mp4", Location: "Lisbon"},
			wantDate: fixed,
		},
		{
			name:    "unknown type",
			input:   &MediaInput{Type: "audio", URL: "https://cdn.example.com/3.mp3", Location: "Lisbon"},
			wantErr: common.ValidationError{Errors: map[string]string{"type": "must be one of: image video"}},
		},
		{
			name:    "missing location and bad maps link",
			input:   &MediaInput{Type: "image", URL: "https://cdn.example.com/4.jpg", GoogleMaps: strptr("maps")},
			wantErr: common.ValidationError{Errors: map[string]string{"location": "must be provided", "googleMaps": "must be a valid URL"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(cleanup)

			media, err := s.CreateMedia(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				return
			}

			require.NoError(t, err)
			assert.Greater(t, media.ID, int64(0))
			assert.True(t, tc.wantDate.Equal(media.Date))

			got, err := s.GetMediaByID(context.Background(), media.Type, media.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.input.URL, got.URL)
			assert.Equal(t, tc.input.Location, *got.Location)
		})
	}
}

func TestGetMedia(t *testing.T) {
	s, _, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	inputs := []*MediaInput{
		{Type: "image", URL: "https://cdn.example.com/late.jpg", Location: "Oslo", Date: "2024-03-01"},
		{Type: "video", URL: "https://cdn.example.com/early.mp4", Location: "Rome", Date: "2023-01-01"},
		{Type: "image", URL: "https://cdn.example.com/mid.jpg", Location: "Cairo", Date: "2023-06-01"},
	}
	for _, in := range inputs {
		_, err := s.CreateMedia(ctx, in)
		require.NoError(t, err)
	}

	all, err := s.GetMedia(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "https://cdn.example.com/early.mp4", all[0].URL)
	assert.Equal(t, MediaVideo, all[0].Type)
	assert.Equal(t, "https://cdn.example.com/mid.jpg", all[1].URL)
	assert.Equal(t, MediaImage, all[1].Type)
	assert.Equal(t, "https://cdn.example.com/late.jpg", all[2].URL)

	images, err := s.GetMedia(ctx, MediaImage)
	require.NoError(t, err)
	require.Len(t, images, 2)
	for _, m := range images {
		assert.Equal(t, MediaImage, m.Type)
	}

	_, err = s.GetMedia(ctx, "gif")
	assert.ErrorAs(t, err, &common.ValidationError{})
}

func TestUpdateMedia(t *testing.T) {
	s, _, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	created, err := s.CreateMedia(ctx, &MediaInput{Type: "video", URL: "https://cdn.example.com/v.mp4", Location: "Rome", Date: "2023-01-01"})
	require.NoError(t, err)

	updated, err := s.UpdateMedia(ctx, MediaVideo, created.ID, &MediaInput{URL: "https://cdn.example.com/v2.mp4", Location: "Naples"})
	require.NoError(t, err)
	assert.Equal(t, "Naples", *updated.Location)
	assert.True(t, created.Date.Equal(updated.Date))

	_, err = s.UpdateMedia(ctx, MediaImage, created.ID, &MediaInput{Type: "video", URL: "https://cdn.example.com/v2.mp4", Location: "Naples"})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"type": "must match the type of the existing entry"}}, err)

	_, err = s.UpdateMedia(ctx, MediaImage, created.ID, &MediaInput{URL: "https://cdn.example.com/v2.mp4", Location: "Naples"})
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestDeleteMedia(t *testing.T) {
	s, remover, logs, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Run("storage delete succeeds", func(t *testing.T) {
		t.Cleanup(cleanup)

		m, err := s.CreateMedia(ctx, &MediaInput{Type: "image", URL: "https://cdn.example.com/ok.jpg", Location: "Kyoto"})
		require.NoError(t, err)

		remover.On("DeleteByURL", "https://cdn.example.com/ok.jpg").Return(nil).Once()

		require.NoError(t, s.DeleteMedia(ctx, MediaImage, m.ID, m.URL))
		assert.Equal(t, 0, countRows(t, s.m.db, "camera_roll_images"))
		assert.Empty(t, logs.String())
	})

	t.Run("storage delete fails", func(t *testing.T) {
		t.Cleanup(cleanup)

		m, err := s.CreateMedia(ctx, &MediaInput{Type: "image", URL: "https://cdn.example.com/fault.jpg", Location: "Kyoto"})
		require.NoError(t, err)

		remover.On("DeleteByURL", "https://cdn.example.com/fault.jpg").Return(errors.New("gateway fault")).Once()

		require.NoError(t, s.DeleteMedia(ctx, MediaImage, m.ID, m.URL))

		all, err := s.GetMedia(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Contains(t, logs.String(), "gateway fault")
		assert.Contains(t, logs.String(), "level=WARN")
	})

	t.Run("missing row skips storage", func(t *testing.T) {
		err := s.DeleteMedia(ctx, MediaVideo, 999, "https://cdn.example.com/none.mp4")
		assert.ErrorIs(t, err, common.ErrRecordNotFound)
		remover.AssertNotCalled(t, "DeleteByURL", "https://cdn.example.com/none.mp4")
	})

	t.Run("url required", func(t *testing.T) {
		err := s.DeleteMedia(ctx, MediaVideo, 1, "")
		assert.Equal(t, common.ValidationError{Errors: map[string]string{"url": "must be provided"}}, err)
	})

	remover.AssertExpectations(t)
}
