package photocompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
)

func strPtr(s string) *string { return &s }

func photoWith(position, state *string, file string) *model.Photo {
	return &model.Photo{Position: position, State: state, FilePath: file}
}

func pairByKey(t *testing.T, pairs []*model.PhotoPair, position, state string) *model.PhotoPair {
	t.Helper()
	for _, p := range pairs {
		s := ""
		if p.State != nil {
			s = *p.State
		}
		if p.Position == position && s == state {
			return p
		}
	}
	t.Fatalf("no pair for key (%s, %s)", position, state)
	return nil
}

func TestMatchPhotosEmptyInputs(t *testing.T) {
	assert.Empty(t, MatchPhotos(nil, nil))
	assert.Empty(t, MatchPhotos([]*model.Photo{}, nil))
}

func TestMatchPhotosCoversUnionOfKeys(t *testing.T) {
	before := []*model.Photo{
		photoWith(strPtr("front"), strPtr("relaxed"), "b1.jpg"),
		photoWith(strPtr("left"), nil, "b2.jpg"),
	}
	after := []*model.Photo{
		photoWith(strPtr("front"), strPtr("relaxed"), "a1.jpg"),
		photoWith(strPtr("right"), nil, "a2.jpg"),
	}

	pairs := MatchPhotos(before, after)
	require.Len(t, pairs, 3)

	matched := pairByKey(t, pairs, "front", "relaxed")
	require.NotNil(t, matched.Before)
	require.NotNil(t, matched.After)
	assert.Equal(t, "b1.jpg", matched.Before.FilePath)
	assert.Equal(t, "a1.jpg", matched.After.FilePath)

	beforeOnly := pairByKey(t, pairs, "left", "")
	assert.NotNil(t, beforeOnly.Before)
	assert.Nil(t, beforeOnly.After)

	afterOnly := pairByKey(t, pairs, "right", "")
	assert.Nil(t, afterOnly.Before)
	assert.NotNil(t, afterOnly.After)
}

func TestMatchPhotosExcludesPhotosWithoutPosition(t *testing.T) {
	before := []*model.Photo{
		photoWith(nil, strPtr("relaxed"), "b1.jpg"),
		photoWith(strPtr(""), nil, "b2.jpg"),
	}
	after := []*model.Photo{
		photoWith(nil, nil, "a1.jpg"),
	}

	assert.Empty(t, MatchPhotos(before, after))
}

func TestMatchPhotosNilStateEqualsEmptyState(t *testing.T) {
	before := []*model.Photo{photoWith(strPtr("front"), nil, "b1.jpg")}
	after := []*model.Photo{photoWith(strPtr("front"), strPtr(""), "a1.jpg")}

	pairs := MatchPhotos(before, after)
	require.Len(t, pairs, 1)
	assert.Nil(t, pairs[0].State)
	require.NotNil(t, pairs[0].Before)
	require.NotNil(t, pairs[0].After)
}

func TestMatchPhotosFirstWinsOnDuplicateKey(t *testing.T) {
	before := []*model.Photo{
		photoWith(strPtr("front"), strPtr("relaxed"), "first.jpg"),
		photoWith(strPtr("front"), strPtr("relaxed"), "shadowed.jpg"),
	}
	after := []*model.Photo{
		photoWith(strPtr("front"), strPtr("relaxed"), "a-first.jpg"),
		photoWith(strPtr("front"), strPtr("relaxed"), "a-shadowed.jpg"),
	}

	pairs := MatchPhotos(before, after)
	require.Len(t, pairs, 1)
	assert.Equal(t, "first.jpg", pairs[0].Before.FilePath)
	assert.Equal(t, "a-first.jpg", pairs[0].After.FilePath)
}

func TestMatchPhotosSamePositionDifferentStates(t *testing.T) {
	before := []*model.Photo{
		photoWith(strPtr("forehead"), strPtr("relaxed"), "b-relaxed.jpg"),
		photoWith(strPtr("forehead"), strPtr("contracted"), "b-contracted.jpg"),
	}
	after := []*model.Photo{
		photoWith(strPtr("forehead"), strPtr("relaxed"), "a-relaxed.jpg"),
		photoWith(strPtr("chin"), nil, "a-chin.jpg"),
	}

	pairs := MatchPhotos(before, after)
	require.Len(t, pairs, 3)

	relaxed := pairByKey(t, pairs, "forehead", "relaxed")
	assert.Equal(t, "b-relaxed.jpg", relaxed.Before.FilePath)
	assert.Equal(t, "a-relaxed.jpg", relaxed.After.FilePath)

	contracted := pairByKey(t, pairs, "forehead", "contracted")
	assert.Equal(t, "b-contracted.jpg", contracted.Before.FilePath)
	assert.Nil(t, contracted.After)

	chin := pairByKey(t, pairs, "chin", "")
	assert.Nil(t, chin.Before)
	assert.Equal(t, "a-chin.jpg", chin.After.FilePath)
}

func TestMatchPhotosStatePointerSetOnlyForNonEmptyState(t *testing.T) {
	pairs := MatchPhotos(
		[]*model.Photo{photoWith(strPtr("front"), strPtr("smiling"), "b.jpg")},
		nil,
	)
	require.Len(t, pairs, 1)
	require.NotNil(t, pairs[0].State)
	assert.Equal(t, "smiling", *pairs[0].State)
}
