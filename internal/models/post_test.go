package models

import "testing"

func TestLikedBySet(t *testing.T) {
	post := &Post{LikedBy: []uint{3, 7, 7, 12}}

	set := post.LikedBySet()
	if len(set) != 3 {
		t.Fatalf("expected 3 distinct likers, got %d", len(set))
	}
	for _, id := range []uint{3, 7, 12} {
		if _, ok := set[id]; !ok {
			t.Errorf("expected user %d in set", id)
		}
	}
}

func TestHasLiked(t *testing.T) {
	post := &Post{LikedBy: []uint{5}}

	if !post.HasLiked(5) {
		t.Error("expected user 5 to have liked the post")
	}
	if post.HasLiked(6) {
		t.Error("did not expect user 6 to have liked the post")
	}

	empty := &Post{}
	if empty.HasLiked(5) {
		t.Error("empty liked_by should contain nobody")
	}
}
