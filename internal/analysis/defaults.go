package analysis

import "github.com/styleadvisor/styleadvisor/internal/models"

const fallbackAnalysis = "Désolé, une erreur s'est produite pendant l'analyse. Veuillez réessayer."

// DefaultBeard returns the record used whenever a live beard analysis is unusable
func DefaultBeard() models.BeardResult {
	return models.BeardResult{
		RecommendedStyle: "Barbe Courte",
		RecommendedColor: "Naturel",
		TrimLengthMM:     "5-10",
		HasGray:          false,
		FaceShape:        "Ovale",
		ProblemAreas:     []string{},
		Recommendations: models.BeardRecommendations{
			Trim:     "Une légère taille est recommandée pour maintenir une apparence professionnelle",
			Products: []string{"L'Oréal Men Expert Barber Club Huile", "L'Oréal Men Expert Barber Club Gel"},
			Routine:  "Lavage quotidien et hydratation recommandés",
		},
		Analysis: fallbackAnalysis,
	}
}

// DefaultLipstick returns the record used whenever a live lipstick analysis is unusable
func DefaultLipstick() models.LipstickResult {
	return models.LipstickResult{
		ChosenColor: "Ruby",
		Analysis:    fallbackAnalysis,
	}
}
