package domain

// DashboardSummary aggregates the counts and recent activity shown on the
// admin landing page.
type DashboardSummary struct {
	TotalPosts      int64     `json:"total_posts"`
	TotalCategories int64     `json:"total_categories"`
	TotalTags       int64     `json:"total_tags"`
	TotalComments   int64     `json:"total_comments"`
	TotalUsers      int64     `json:"total_users"`
	RecentPosts     []Post    `json:"recent_posts"`
	RecentComments  []Comment `json:"recent_comments"`
}
