package trends

// TrendingEntry is one number in the most-reported ranking
type TrendingEntry struct {
	Number  string `json:"number"`
	Reports int64  `json:"reports"`
}

// DashboardSummary is the aggregate view over the whole report store
type DashboardSummary struct {
	TotalReports         int64            `json:"total_reports"`
	CategoryDistribution map[string]int64 `json:"category_distribution"`
	Trending             []TrendingEntry  `json:"trending"`
}
