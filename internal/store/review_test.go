// internal/store/review_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront-backend/internal/persist"
)

func TestReviewsAddReturnsPopulatedReview(t *testing.T) {
	r := NewReviews(persist.NewMemoryStore(), testLogger())

	review, ok := r.Add("p1", "u1", "Sarah", 5, "Great!")
	require.True(t, ok)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "p1", review.ProductID)
	assert.Equal(t, "u1", review.UserID)
	assert.Equal(t, "Sarah", review.UserName)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestReviewsAddRejectsInvalidInput(t *testing.T) {
	r := NewReviews(persist.NewMemoryStore(), testLogger())

	for _, rating := range []int{0, -1, 6} {
		_, ok := r.Add("p1", "u1", "Sarah", rating, "")
		assert.False(t, ok, "rating %d", rating)
	}

	_, ok := r.Add("", "u1", "Sarah", 5, "")
	assert.False(t, ok)
	_, ok = r.Add("p1", "", "Sarah", 5, "")
	assert.False(t, ok)

	assert.Equal(t, 0, r.Count("p1"))
}

func TestReviewsNewestFirst(t *testing.T) {
	r := NewReviews(persist.NewMemoryStore(), testLogger())

	first, _ := r.Add("p1", "u1", "Sarah", 4, "first")
	second, _ := r.Add("p1", "u2", "Michael", 5, "second")

	reviews := r.ByProduct("p1")
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}

func TestReviewsByProductFilters(t *testing.T) {
	r := NewReviews(persist.NewMemoryStore(), testLogger())

	r.Add("p1", "u1", "Sarah", 4, "")
	r.Add("p2", "u1", "Sarah", 5, "")

	assert.Len(t, r.ByProduct("p1"), 1)
	assert.Len(t, r.ByProduct("p2"), 1)
	assert.Empty(t, r.ByProduct("p3"))
	assert.Len(t, r.All(), 2)
}

func TestReviewsAverageRating(t *testing.T) {
	r := NewReviews(persist.NewMemoryStore(), testLogger())

	assert.Equal(t, 0.0, r.AverageRating("p1"))

	r.Add("p1", "u1", "Sarah", 4, "")
	r.Add("p1", "u2", "Michael", 5, "")
	r.Add("p1", "u3", "Emma", 3, "")

	assert.InDelta(t, 4.0, r.AverageRating("p1"), 1e-9)
	assert.Equal(t, 3, r.Count("p1"))
}

func TestReviewsDelete(t *testing.T) {
	r := NewReviews(persist.NewMemoryStore(), testLogger())

	review, _ := r.Add("p1", "u1", "Sarah", 4, "")

	require.NoError(t, r.Delete(review.ID))
	assert.Equal(t, 0, r.Count("p1"))

	assert.ErrorIs(t, r.Delete(review.ID), ErrReviewNotFound)
}

func TestReviewsSurviveReload(t *testing.T) {
	snapshots := persist.NewMemoryStore()

	r := NewReviews(snapshots, testLogger())
	r.Add("p1", "u1", "Sarah", 4, "still here")

	reloaded := NewReviews(snapshots, testLogger())
	reviews := reloaded.ByProduct("p1")
	require.Len(t, reviews, 1)
	assert.Equal(t, "still here", reviews[0].Comment)
}
