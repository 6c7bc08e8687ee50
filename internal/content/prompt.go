package content

import (
	"fmt"
	"strings"
)

// promptKey selects a base instruction template.
type promptKey struct {
	Type ContentType
	Lang Language
}

// toneKey selects a tone directive.
type toneKey struct {
	Tone Tone
	Lang Language
}

// basePrompts holds the instruction template for every supported
// (content type, language) pair. Slots take product name and category.
var basePrompts = map[promptKey]string{
	{TypeDescription, LangEnglish}: "Write a product description for %s in the %s category.",
	{TypeDescription, LangFrench}:  "Écrivez une description de produit pour %s dans la catégorie %s.",
	{TypeSocialPost, LangEnglish}:  "Create a social media post for %s in the %s category. Include relevant hashtags and a call-to-action.",
	{TypeSocialPost, LangFrench}:   "Créez un post de médias sociaux pour %s dans la catégorie %s. Incluez des hashtags pertinents et un appel à l'action.",
	{TypeEmail, LangEnglish}:       "Write email marketing copy for %s in the %s category. Suggest a clear subject line and close with a strong call-to-action.",
	{TypeEmail, LangFrench}:        "Écrivez un contenu d'email marketing pour %s dans la catégorie %s. Proposez un objet clair et terminez par un appel à l'action fort.",
}

// toneDirectives holds the style instruction for every (tone, language) pair.
var toneDirectives = map[toneKey]string{
	{ToneProfessional, LangEnglish}: "Use a professional, informative tone. Highlight the key features and benefits, include SEO-friendly keywords, and focus on the value proposition.",
	{TonePlayful, LangEnglish}:      "Use a fun, energetic tone with personality. Reach for creative language and emojis, and make the copy shareable and memorable.",
	{ToneLuxury, LangEnglish}:       "Use an elegant, premium tone. Emphasize exclusivity and craftsmanship with refined vocabulary, and focus on quality and prestige.",
	{ToneCasual, LangEnglish}:       "Use a conversational, approachable tone. Stick to everyday language and stay relatable and down-to-earth.",
	{ToneProfessional, LangFrench}:  "Adoptez un ton professionnel et informatif. Mettez en avant les caractéristiques et avantages clés, incluez des mots-clés SEO et concentrez-vous sur la proposition de valeur.",
	{TonePlayful, LangFrench}:       "Adoptez un ton amusant et énergique avec de la personnalité. Utilisez un langage créatif et des emojis pour rendre le texte partageable et mémorable.",
	{ToneLuxury, LangFrench}:        "Adoptez un ton élégant et premium. Soulignez l'exclusivité et l'artisanat avec un vocabulaire raffiné, en vous concentrant sur la qualité et le prestige.",
	{ToneCasual, LangFrench}:        "Adoptez un ton conversationnel et accessible. Utilisez un langage quotidien et restez proche et terre-à-terre.",
}

// BuildPrompt renders the instruction prompt for a request. Deterministic
// and free of side effects: the same request always yields the same prompt.
// Fails only when the request does not validate.
func BuildPrompt(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	category := strings.TrimSpace(req.Product.Category)
	if category == "" {
		category = "general"
		if req.Language == LangFrench {
			category = "générale"
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(basePrompts[promptKey{req.Type, req.Language}], req.Product.Name, category))
	b.WriteString("\n\n")
	writeProductBlock(&b, req)
	b.WriteString("\n")
	b.WriteString(toneDirectives[toneKey{req.Tone, req.Language}])
	b.WriteString("\n")
	b.WriteString(lengthHint(req.Type, req.Language))
	b.WriteString("\n")

	return b.String(), nil
}

func writeProductBlock(b *strings.Builder, req Request) {
	p := req.Product

	if req.Language == LangFrench {
		b.WriteString(fmt.Sprintf("Produit: %s\n", p.Name))
		if p.Category != "" {
			b.WriteString(fmt.Sprintf("Catégorie: %s\n", p.Category))
		}
		if p.Price > 0 {
			b.WriteString(fmt.Sprintf("Prix: %.2f €\n", p.Price))
		}
		if features := p.FeatureList(); features != "" {
			b.WriteString(fmt.Sprintf("Caractéristiques clés: %s\n", features))
		}
		if p.Audience != "" {
			b.WriteString(fmt.Sprintf("Public cible: %s\n", p.Audience))
		}
		if req.Type == TypeEmail {
			b.WriteString(fmt.Sprintf("Appel à l'action: %s\n", p.Attribute("cta")))
		}
		return
	}

	b.WriteString(fmt.Sprintf("Product: %s\n", p.Name))
	if p.Category != "" {
		b.WriteString(fmt.Sprintf("Category: %s\n", p.Category))
	}
	if p.Price > 0 {
		b.WriteString(fmt.Sprintf("Price: €%.2f\n", p.Price))
	}
	if features := p.FeatureList(); features != "" {
		b.WriteString(fmt.Sprintf("Key features: %s\n", features))
	}
	if p.Audience != "" {
		b.WriteString(fmt.Sprintf("Target audience: %s\n", p.Audience))
	}
	if req.Type == TypeEmail {
		b.WriteString(fmt.Sprintf("Call to action: %s\n", p.Attribute("cta")))
	}
}

func lengthHint(t ContentType, lang Language) string {
	var words string
	switch t {
	case TypeDescription:
		words = "150-200"
	case TypeSocialPost:
		words = "100-150"
	default:
		words = "200-300"
	}
	if lang == LangFrench {
		return fmt.Sprintf("Visez %s mots.", words)
	}
	return fmt.Sprintf("Aim for %s words.", words)
}
