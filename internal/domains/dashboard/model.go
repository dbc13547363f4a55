package dashboard

// Stats is the read-only aggregate snapshot backing the dashboard
// screen. There is no mutation path.
type Stats struct {
	TotalBooks      int             `json:"totalBooks"`
	TotalUsers      int             `json:"totalUsers"`
	TotalCategories int             `json:"totalCategories"`
	TotalReviews    int             `json:"totalReviews"`
	TopCategories   []CategoryCount `json:"topCategories"`
	UserActivity    []MonthActivity `json:"userActivity"`
}

// CategoryCount is one bar of the top-categories chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MonthActivity is one point of the user-activity-by-month series.
type MonthActivity struct {
	Month           string `json:"month"`
	NewUsers        int    `json:"newUsers"`
	Recommendations int    `json:"recommendations"`
}
