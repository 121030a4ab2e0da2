package domain

// Statistics aggregates catalog and moderation counters for the stats
// endpoint.
type Statistics struct {
	TotalAttractions        int64 `json:"total_attractions"`
	VerifiedAttractions     int64 `json:"verified_attractions"`
	UniqueContributors      int64 `json:"unique_contributors"`
	TotalRecommendations    int64 `json:"total_recommendations"`
	PendingRecommendations  int64 `json:"pending_recommendations"`
	ApprovedRecommendations int64 `json:"approved_recommendations"`
	RejectedRecommendations int64 `json:"rejected_recommendations"`
}
