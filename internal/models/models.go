package models

// BeardResult is the normalized beard recommendation handed to the presentation layer
type BeardResult struct {
	RecommendedStyle string               `json:"recommended_style" yaml:"recommended_style"`
	RecommendedColor string               `json:"recommended_color" yaml:"recommended_color"`
	TrimLengthMM     string               `json:"trim_length_mm" yaml:"trim_length_mm"`
	HasGray          bool                 `json:"has_gray" yaml:"has_gray"`
	FaceShape        string               `json:"face_shape" yaml:"face_shape"`
	ProblemAreas     []string             `json:"problem_areas" yaml:"problem_areas"`
	Recommendations  BeardRecommendations `json:"recommendations" yaml:"recommendations"`
	Analysis         string               `json:"analysis" yaml:"analysis"`
}

// BeardRecommendations holds the care advice part of a beard result
type BeardRecommendations struct {
	Trim     string   `json:"trim" yaml:"trim"`
	Products []string `json:"products" yaml:"products"`
	Routine  string   `json:"routine" yaml:"routine"`
}

// LipstickResult is the normalized lipstick recommendation
type LipstickResult struct {
	ChosenColor string `json:"chosen_color" yaml:"chosen_color"`
	Analysis    string `json:"analysis" yaml:"analysis"`
}
