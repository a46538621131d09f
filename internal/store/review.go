// internal/store/review.go
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
)

// Reviews is an append-only per-product review ledger. End users only add;
// deletion exists for the admin surface.
type Reviews struct {
	mu        sync.Mutex
	reviews   []models.Review
	snapshots persist.Store
	log       *logrus.Logger
}

type reviewSnapshot struct {
	Reviews []models.Review `json:"reviews"`
}

func NewReviews(snapshots persist.Store, log *logrus.Logger) *Reviews {
	r := &Reviews{snapshots: snapshots, log: log}

	var snap reviewSnapshot
	switch err := snapshots.Load(persist.NamespaceReviews, &snap); err {
	case nil:
		for _, review := range snap.Reviews {
			if review.ID != "" && review.ProductID != "" {
				r.reviews = append(r.reviews, review)
			}
		}
		if dropped := len(snap.Reviews) - len(r.reviews); dropped > 0 {
			log.WithField("dropped", dropped).Warn("Discarded stale reviews from snapshot")
		}
	case persist.ErrNotFound:
	default:
		log.WithError(err).Warn("Failed to load review snapshot, starting empty")
	}
	return r
}

// Add prepends a new review and returns it. Ratings outside 1..5 and missing
// ids are dropped silently.
func (r *Reviews) Add(productID, userID, userName string, rating int, comment string) (models.Review, bool) {
	if productID == "" || userID == "" || rating < 1 || rating > 5 {
		return models.Review{}, false
	}

	review := models.Review{
		ID:        compositeID("review"),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append([]models.Review{review}, r.reviews...)
	r.persistLocked()
	return review, true
}

// Delete removes a review by id. Admin path only.
func (r *Reviews) Delete(reviewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, review := range r.reviews {
		if review.ID == reviewID {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return ErrReviewNotFound
}

// ByProduct returns a product's reviews, newest first. Insertion already keeps
// that order; the sort reasserts it for snapshots written by older versions.
func (r *Reviews) ByProduct(productID string) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			out = append(out, review)
		}
	}
	sortNewestFirst(out)
	return out
}

// All returns every review, newest first. Admin surface.
func (r *Reviews) All() []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]models.Review(nil), r.reviews...)
	sortNewestFirst(out)
	return out
}

// AverageRating returns the arithmetic mean of a product's live review
// ratings, or 0 when none exist. This is independent from the product's
// seeded rating field.
func (r *Reviews) AverageRating(productID string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum, n := 0, 0
	for _, review := range r.reviews {
		if review.ProductID == productID {
			sum += review.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Count returns the number of live reviews for a product, distinct from the
// product's seeded reviewCount.
func (r *Reviews) Count(productID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, review := range r.reviews {
		if review.ProductID == productID {
			n++
		}
	}
	return n
}

func sortNewestFirst(reviews []models.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func (r *Reviews) persistLocked() {
	if err := r.snapshots.Save(persist.NamespaceReviews, reviewSnapshot{Reviews: r.reviews}); err != nil {
		r.log.WithError(err).Warn("Failed to persist review snapshot")
	}
}
