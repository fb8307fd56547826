package heroservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/wayfarer/internal/common"
)

func setupTestEnvironment(t *testing.T) (*HeroService, *sql.DB, func()) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() {
		for _, table := range []string{"hero_settings", favoritesTable, tagsTable} {
			_, err := db.Exec("DELETE FROM " + table)
			assert.NoError(t, err)
		}
	}

	return NewHeroService(db), db, cleanup
}

func settingsInput() *HeroSettingsInput {
	return &HeroSettingsInput{
		Title:             "Wander",
		Description:       "Stories from the road",
		SecondDescription: "Guides and photos",
		FontColor:         "#ffffff",
		TextColor:         "#000000",
		Video:             "https://cdn.example.com/hero.mp4",
		BackgroundColor:   "#112233",
		FontSize:          32,
		Image:             "https://cdn.example.com/hero.jpg",
	}
}

func TestSettings(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := s.GetSettings(ctx)
	assert.ErrorIs(t, err, common.ErrRecordNotFound)

	_, err = s.SaveSettings(ctx, settingsInput())
	require.NoError(t, err)

	in := settingsInput()
	in.Title = "Wander More"
	saved, err := s.SaveSettings(ctx, in)
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM hero_settings").Scan(&n))
	assert.Equal(t, 1, n)

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Wander More", got.Title)
	assert.Equal(t, 32, got.FontSize)
}

func TestSaveSettingsValidation(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name   string
		modify func(in *HeroSettingsInput)
		field  string
	}{
		{name: "font size too small", modify: func(in *HeroSettingsInput) { in.FontSize = 9 }, field: "fontSize"},
		{name: "font size too large", modify: func(in *HeroSettingsInput) { in.FontSize = 61 }, field: "fontSize"},
		{name: "missing title", modify: func(in *HeroSettingsInput) { in.Title = "" }, field: "title"},
		{name: "invalid video url", modify: func(in *HeroSettingsInput) { in.Video = "not a url" }, field: "video"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(cleanup)

			in := settingsInput()
			tc.modify(in)

			_, err := s.SaveSettings(context.Background(), in)
			var verr common.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Errors, tc.field)

			var n int
			require.NoError(t, db.QueryRow("SELECT count(*) FROM hero_settings").Scan(&n))
			assert.Equal(t, 0, n)
		})
	}
}

func TestFavorites(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	blogID := int64(7)
	first, err := s.CreateFavorite(ctx, &FavoriteInput{Title: "Kyoto", Description: "Temples", Image: "https://cdn.example.com/kyoto.jpg", BlogID: &blogID})
	require.NoError(t, err)
	second, err := s.CreateFavorite(ctx, &FavoriteInput{Title: "Porto", Description: "Tiles", Image: "https://cdn.example.com/porto.jpg"})
	require.NoError(t, err)

	favorites, err := s.GetFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, first.ID, favorites[0].ID)
	assert.Equal(t, int64(7), *favorites[0].BlogID)
	assert.Nil(t, favorites[1].BlogID)

	updated, err := s.UpdateFavorite(ctx, second.ID, &FavoriteInput{Title: "Porto", Description: "Port wine", Image: "https://cdn.example.com/porto.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Port wine", updated.Description)

	got, err := s.GetFavoriteByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Port wine", got.Description)

	_, err = s.CreateFavorite(ctx, &FavoriteInput{Title: "Bad", Description: "Bad", Image: "https://cdn.example.com/x.jpg", BlogID: new(int64)})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"blogId": "must be greater than 0"}}, err)

	require.NoError(t, s.DeleteFavorite(ctx, first.ID))
	assert.ErrorIs(t, s.DeleteFavorite(ctx, first.ID), common.ErrRecordNotFound)
	_, err = s.UpdateFavorite(ctx, first.ID, &FavoriteInput{Title: "Kyoto", Description: "Temples", Image: "https://cdn.example.com/kyoto.jpg"})
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestTags(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tag, err := s.CreateTag(ctx, &TagInput{Tag: "hiking", Image: "https://cdn.example.com/hike.jpg"})
	require.NoError(t, err)

	_, err = s.CreateTag(ctx, &TagInput{Image: "https://cdn.example.com/hike.jpg"})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"tag": "must be provided"}}, err)

	tags, err := s.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	updated, err := s.UpdateTag(ctx, tag.ID, &TagInput{Tag: "trekking", Image: "https://cdn.example.com/hike.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "trekking", updated.Tag)

	got, err := s.GetTagByID(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "trekking", got.Tag)

	_, err = s.GetTagByID(ctx, -1)
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"id": "must be greater than zero"}}, err)

	require.NoError(t, s.DeleteTag(ctx, tag.ID))
	_, err = s.GetTagByID(ctx, tag.ID)
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}
