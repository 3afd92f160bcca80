package analysis

import (
	"fmt"
	"strings"

	"github.com/styleadvisor/styleadvisor/internal/catalog"
	"github.com/styleadvisor/styleadvisor/internal/providers"
)

// ImageMIMEType is declared for every image regardless of its actual format
const ImageMIMEType = "image/jpeg"

// Output budgets per domain
const (
	BeardMaxTokens    = 800
	LipstickMaxTokens = 150
)

const beardSystemPrompt = "Tu es un expert en analyse faciale et stylisme capillaire pour hommes de la marque L'Oréal Paris. " +
	"Tu dois fournir une analyse professionnelle corporative de barbes et recommander des solutions précises et techniques. " +
	"Ta réponse doit TOUJOURS être en JSON valide avec le format demandé."

const lipstickSystemPrompt = "Tu es une conseillère beauté experte et amicale. " +
	"Tu dois analyser les photos et suggérer le meilleur rouge à lèvres. " +
	"Ta réponse doit TOUJOURS être en JSON valide."

// BuildRequest produces the single provider request for one image and domain.
// Any byte stream is accepted; domain must be one of the catalog domains.
func BuildRequest(image []byte, domain catalog.Domain) providers.Request {
	req := providers.Request{
		Image:    image,
		MIMEType: ImageMIMEType,
	}

	switch domain {
	case catalog.Beard:
		req.System = beardSystemPrompt
		req.Prompt = buildBeardPrompt()
		req.MaxTokens = BeardMaxTokens
	case catalog.Lipstick:
		req.System = lipstickSystemPrompt
		req.Prompt = buildLipstickPrompt()
		req.MaxTokens = LipstickMaxTokens
	}

	return req
}

func bulletList(names []string, indent string, describe func(string) string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(indent)
		sb.WriteString(name)
		if describe != nil {
			if d := describe(name); d != "" {
				sb.WriteString(" (" + d + ")")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func buildBeardPrompt() string {
	return fmt.Sprintf(`Analyse cette photo avec précision technique et professionnelle:

1. Analyse faciale et pilosité:
- Forme du visage (ovale, carré, rond, rectangulaire, triangulaire)
- Densité de la barbe (clairsemée, moyenne, dense)
- Présence de poils blancs/gris (pourcentage approximatif)
- Longueur actuelle en mm approximative
- Problèmes spécifiques (zones clairsemées, croissance inégale, irritations)

2. Recommandations professionnelles:
- Style de barbe le plus adapté parmi:
%s
- Couleur idéale parmi:
%s
3. Recommandations techniques:
- Longueur optimale en mm précise
- Techniques de taille spécifiques (dégradé, contours nets, etc.)
- Produits L'Oréal Paris spécifiquement adaptés (nommer 2-3 produits)
- Routine d'entretien quotidienne

Tu DOIS répondre EXACTEMENT dans ce format JSON:
{
  "recommended_style": "UN STYLE PRÉCIS PARMI LA LISTE",
  "recommended_color": "UNE COULEUR PRÉCISE PARMI LA LISTE",
  "trim_length_mm": "LONGUEUR EN MM",
  "has_gray": boolean,
  "face_shape": "FORME DU VISAGE",
  "problem_areas": ["PROBLÈME 1", "PROBLÈME 2"],
  "recommendations": {
    "trim": "CONSEIL TECHNIQUE DE TAILLE PRÉCIS",
    "products": ["PRODUIT L'ORÉAL 1", "PRODUIT L'ORÉAL 2", "PRODUIT L'ORÉAL 3"],
    "routine": "ROUTINE D'ENTRETIEN PROFESSIONNELLE DÉTAILLÉE"
  },
  "analysis": "TON ANALYSE PROFESSIONNELLE ET CORPORATIVE DÉTAILLÉE EN FRANÇAIS"
}`,
		bulletList(catalog.BeardStyles().Names(), "  * ", nil),
		bulletList(catalog.BeardColors().Names(), "  * ", nil),
	)
}

func buildLipstickPrompt() string {
	return fmt.Sprintf(`Analyse cette photo et suggère la meilleure teinte de rouge à lèvres parmi ces options uniquement:
%s
Tu DOIS répondre EXACTEMENT dans ce format JSON :
{"chosen_color": "EXACTEMENT UN DES NOMS CI-DESSUS", "analysis": "Ton analyse friendly en français qui commence par Hey beauty! ou Coucou beauté!"}`,
		bulletList(catalog.LipstickColors().Names(), "- ", catalog.LipstickHint),
	)
}
