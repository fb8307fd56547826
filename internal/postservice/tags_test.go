package postservice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsValue(t *testing.T) {
	v, err := Tags(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = Tags{"food", "city", "food"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"food","city","food"}`, v)
}

func TestTagsScan(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan([]byte(`{"street food","city"}`)))
	assert.Equal(t, Tags{"street food", "city"}, tags)

	require.NoError(t, tags.Scan([]byte(`{}`)))
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestTagsMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Tags Tags `json:"tags"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":[]}`, string(b))

	b, err = json.Marshal(Tags{"b", "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `["b","a"]`, string(b))
}
