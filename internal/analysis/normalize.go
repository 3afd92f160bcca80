package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/styleadvisor/styleadvisor/internal/catalog"
	"github.com/styleadvisor/styleadvisor/internal/models"
)

// Diagnosis describes how a reply was turned into a record
type Diagnosis struct {
	// Failure is set when the reply could not be parsed and the default record was used
	Failure *Failure
	// Replaced lists enum fields whose value was outside the catalog and got the default value
	Replaced []string
}

// StripFences removes leading ``` or ```json markers and trailing ``` markers,
// however many are stacked. Text without fences is only trimmed.
func StripFences(reply string) string {
	s := strings.TrimSpace(reply)
	for {
		next := stripFence(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripFence(s string) string {
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
		if len(s) >= len("json") && strings.EqualFold(s[:len("json")], "json") {
			s = s[len("json"):]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// flexString accepts a JSON string or number; models sometimes answer lengths as bare numbers
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = flexString(num.String())
	return nil
}

type rawBeard struct {
	RecommendedStyle *string             `json:"recommended_style"`
	RecommendedColor *string             `json:"recommended_color"`
	TrimLengthMM     *flexString         `json:"trim_length_mm"`
	HasGray          *bool               `json:"has_gray"`
	FaceShape        *string             `json:"face_shape"`
	ProblemAreas     []string            `json:"problem_areas"`
	Recommendations  *rawRecommendations `json:"recommendations"`
	Analysis         *string             `json:"analysis"`
}

type rawRecommendations struct {
	Trim     *string  `json:"trim"`
	Products []string `json:"products"`
	Routine  *string  `json:"routine"`
}

type rawLipstick struct {
	ChosenColor *string `json:"chosen_color"`
	Analysis    *string `json:"analysis"`
}

func decodeObject(reply string, v any) error {
	cleaned := StripFences(reply)
	if !strings.HasPrefix(cleaned, "{") {
		return fmt.Errorf("%w: reply is not a JSON object", ErrMalformedReply)
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return nil
}

func (d *Diagnosis) enum(field, value string, c catalog.Catalog, fallback string) string {
	if name, ok := c.Canonical(value); ok {
		return name
	}
	d.Replaced = append(d.Replaced, field)
	return fallback
}

// NormalizeBeard turns any reply into a valid beard record.
// Fields missing from an otherwise valid reply keep their default value.
func NormalizeBeard(reply string) (models.BeardResult, Diagnosis) {
	result := DefaultBeard()

	var raw rawBeard
	if err := decodeObject(reply, &raw); err != nil {
		return result, Diagnosis{Failure: &Failure{Reason: ReasonMalformedReply, Err: err}}
	}

	var diag Diagnosis
	if raw.RecommendedStyle != nil {
		result.RecommendedStyle = diag.enum("recommended_style", *raw.RecommendedStyle, catalog.BeardStyles(), result.RecommendedStyle)
	}
	if raw.RecommendedColor != nil {
		result.RecommendedColor = diag.enum("recommended_color", *raw.RecommendedColor, catalog.BeardColors(), result.RecommendedColor)
	}
	if raw.TrimLengthMM != nil {
		result.TrimLengthMM = string(*raw.TrimLengthMM)
	}
	if raw.HasGray != nil {
		result.HasGray = *raw.HasGray
	}
	if raw.FaceShape != nil {
		result.FaceShape = *raw.FaceShape
	}
	if raw.ProblemAreas != nil {
		result.ProblemAreas = raw.ProblemAreas
	}
	if rec := raw.Recommendations; rec != nil {
		if rec.Trim != nil {
			result.Recommendations.Trim = *rec.Trim
		}
		if rec.Products != nil {
			result.Recommendations.Products = rec.Products
		}
		if rec.Routine != nil {
			result.Recommendations.Routine = *rec.Routine
		}
	}
	if raw.Analysis != nil {
		result.Analysis = *raw.Analysis
	}

	return result, diag
}

// NormalizeLipstick turns any reply into a valid lipstick record
func NormalizeLipstick(reply string) (models.LipstickResult, Diagnosis) {
	result := DefaultLipstick()

	var raw rawLipstick
	if err := decodeObject(reply, &raw); err != nil {
		return result, Diagnosis{Failure: &Failure{Reason: ReasonMalformedReply, Err: err}}
	}

	var diag Diagnosis
	if raw.ChosenColor != nil {
		result.ChosenColor = diag.enum("chosen_color", *raw.ChosenColor, catalog.LipstickColors(), result.ChosenColor)
	}
	if raw.Analysis != nil {
		result.Analysis = *raw.Analysis
	}

	return result, diag
}
