package services

import (
	"math/rand"
	"sort"
	"time"

	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/utils"
)

// Balancer downsamples a review table so every sentiment class ends up
// with the same row count: the minimum class count in the input. The
// random source is explicit and seedable so balanced datasets are
// reproducible.
type Balancer struct {
	logger *utils.Logger
	rng    *rand.Rand
}

// NewBalancer creates a Balancer. A zero seed picks a time-based one.
func NewBalancer(logger *utils.Logger, seed int64) *Balancer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Balancer{
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Balance returns a review table where each sentiment class holds a
// uniform random sample, without replacement, of the minimum class
// count. Output is grouped by class in sorted class order.
func (b *Balancer) Balance(reviews []*models.Review) []*models.Review {
	if len(reviews) == 0 {
		return nil
	}

	groups := make(map[string][]*models.Review)
	for _, r := range reviews {
		groups[r.Sentiment] = append(groups[r.Sentiment], r)
	}

	minCount := len(reviews)
	classes := make([]string, 0, len(groups))
	for class, g := range groups {
		classes = append(classes, class)
		if len(g) < minCount {
			minCount = len(g)
		}
	}
	sort.Strings(classes)

	balanced := make([]*models.Review, 0, minCount*len(classes))
	for _, class := range classes {
		g := groups[class]
		b.rng.Shuffle(len(g), func(i, j int) {
			g[i], g[j] = g[j], g[i]
		})
		balanced = append(balanced, g[:minCount]...)
	}

	b.logger.Info("[balancer] %d classes balanced to %d reviews each (%d → %d rows)",
		len(classes), minCount, len(reviews), len(balanced))
	return balanced
}
