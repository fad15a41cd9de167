package photocompare

import (
	"github.com/clinicdesk/clinic-api/internal/model"
)

// photoKey is the composite matching key. State is normalized so a nil
// state and an empty-string state are the same key.
type photoKey struct {
	position string
	state    string
}

func keyOf(photo *model.Photo) (photoKey, bool) {
	if photo.Position == nil || *photo.Position == "" {
		return photoKey{}, false
	}
	state := ""
	if photo.State != nil {
		state = *photo.State
	}
	return photoKey{position: *photo.Position, state: state}, true
}

// MatchPhotos pairs two photo collections by (position, state). The
// returned pair set covers exactly the union of keys present in either
// collection; photos without a position are excluded entirely. When a
// collection holds several photos sharing a key, the first per that
// collection's ordering wins and the rest are shadowed. Pair order is
// unspecified; callers needing stable order sort downstream.
func MatchPhotos(before, after []*model.Photo) []*model.PhotoPair {
	keys := make(map[photoKey]struct{})
	firstBefore := make(map[photoKey]*model.Photo)
	firstAfter := make(map[photoKey]*model.Photo)

	for _, photo := range before {
		key, ok := keyOf(photo)
		if !ok {
			continue
		}
		keys[key] = struct{}{}
		if _, seen := firstBefore[key]; !seen {
			firstBefore[key] = photo
		}
	}
	for _, photo := range after {
		key, ok := keyOf(photo)
		if !ok {
			continue
		}
		keys[key] = struct{}{}
		if _, seen := firstAfter[key]; !seen {
			firstAfter[key] = photo
		}
	}

	pairs := make([]*model.PhotoPair, 0, len(keys))
	for key := range keys {
		pair := &model.PhotoPair{
			Position: key.position,
			Before:   firstBefore[key],
			After:    firstAfter[key],
		}
		if key.state != "" {
			state := key.state
			pair.State = &state
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
