package recommendation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AlgorithmType enum
type AlgorithmType string

const (
	AlgorithmCollaborative AlgorithmType = "collaborative"
	AlgorithmContent       AlgorithmType = "content"
	AlgorithmHybrid        AlgorithmType = "hybrid"
)

// Settings is the singleton recommendation configuration. Updates fully
// replace the record; there is no partial patch.
type Settings struct {
	AlgorithmType       AlgorithmType `json:"algorithmType"`
	SimilarityThreshold float64       `json:"similarityThreshold"`
	MaxRecommendations  int           `json:"maxRecommendations"`
	IncludeRatings      bool          `json:"includeRatings"`
	IncludeGenres       bool          `json:"includeGenres"`
	IncludePopularity   bool          `json:"includePopularity"`
	RecencyWeight       float64       `json:"recencyWeight"`
	PopularityWeight    float64       `json:"popularityWeight"`
	RatingWeight        float64       `json:"ratingWeight"`
	RefreshInterval     int           `json:"refreshInterval"` // hours
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.AlgorithmType,
			validation.Required,
			validation.In(AlgorithmCollaborative, AlgorithmContent, AlgorithmHybrid),
		),
		validation.Field(&s.SimilarityThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.RecencyWeight, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.PopularityWeight, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.RatingWeight, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.MaxRecommendations, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&s.RefreshInterval, validation.Required, validation.Min(1)),
	)
}
