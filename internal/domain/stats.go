package domain

type LifecycleStats struct {
	TotalHazards   int64 `json:"total_hazards"`
	Resolved       int64 `json:"resolved"`
	ResolvedRecent int64 `json:"resolved_recent"`
	OpenReports    int64 `json:"open_reports"`
	Minutes        int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}
