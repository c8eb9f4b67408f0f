package services

import (
	"fmt"
	"sort"
	"strings"

	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/utils"
)

// ReportService computes and prints summary statistics over the
// assembled dataset.
type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

func (s *ReportService) Generate(products []*models.Product, reviews []*models.Review) *models.RunReport {
	report := &models.RunReport{
		TotalProducts:   len(products),
		TotalReviews:    len(reviews),
		SentimentCounts: make(map[string]int),
		RatingCounts:    make(map[int]int),
		TopCategories:   make(map[string]int),
	}

	var ratingSum, priceSum float64
	var rated, priced int
	for _, p := range products {
		if p.RatingAverage > 0 {
			ratingSum += p.RatingAverage
			rated++
		}
		if p.Price > 0 {
			priceSum += float64(p.Price)
			priced++
		}
		if p.CategoryName != "" {
			report.TopCategories[p.CategoryName]++
		}
	}
	if rated > 0 {
		report.AverageRating = ratingSum / float64(rated)
	}
	if priced > 0 {
		report.AveragePrice = priceSum / float64(priced)
	}

	for _, r := range reviews {
		report.SentimentCounts[r.Sentiment]++
		report.RatingCounts[r.Rating]++
		if r.IsVerified {
			report.VerifiedReviews++
		}
	}

	return report
}

func (s *ReportService) Print(r *models.RunReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 TIKI SENTIMENT DATASET REPORT\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Products collected : \033[1m%d\033[0m\n", r.TotalProducts)
	fmt.Printf("  Reviews collected  : \033[1m%d\033[0m\n", r.TotalReviews)
	fmt.Printf("  Verified reviews   : \033[1m%d\033[0m\n", r.VerifiedReviews)
	if r.AverageRating > 0 {
		fmt.Printf("  Average rating     : \033[1;32m%.2f ★\033[0m\n", r.AverageRating)
	}
	if r.AveragePrice > 0 {
		fmt.Printf("  Average price      : \033[1;32m%.0f₫\033[0m\n", r.AveragePrice)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Sentiment Distribution\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.SentimentCounts) == 0 {
		fmt.Printf("  No reviews collected\n")
	} else {
		for _, class := range sortedKeys(r.SentimentCounts) {
			count := r.SentimentCounts[class]
			fmt.Printf("  %-10s %s (%d)\n", class, bar(count, r.TotalReviews), count)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Reviews by Star Rating\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.RatingCounts) == 0 {
		fmt.Printf("  No rating data\n")
	} else {
		for stars := 1; stars <= 5; stars++ {
			count := r.RatingCounts[stars]
			fmt.Printf("  %d★  %s (%d)\n", stars, bar(count, r.TotalReviews), count)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Categories\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopCategories) == 0 {
		fmt.Printf("  No category data\n")
	} else {
		type catCount struct {
			name  string
			count int
		}
		var cats []catCount
		for name, cnt := range r.TopCategories {
			cats = append(cats, catCount{name, cnt})
		}
		sort.Slice(cats, func(i, j int) bool {
			if cats[i].count != cats[j].count {
				return cats[i].count > cats[j].count
			}
			return cats[i].name < cats[j].name
		})
		if len(cats) > 10 {
			cats = cats[:10]
		}
		for _, c := range cats {
			fmt.Printf("  %-30s %d\n", truncate(c.name, 28), c.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// bar renders a proportional ASCII bar, capped at 40 cells.
func bar(count, total int) string {
	if total == 0 {
		return ""
	}
	width := count * 40 / total
	if width == 0 && count > 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
