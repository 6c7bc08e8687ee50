package content

import (
	"fmt"
	"strings"
	"time"
)

// fallbackKey indexes the deterministic template table.
type fallbackKey struct {
	Type ContentType
	Tone Tone
	Lang Language
}

// fallbackTemplates covers the full content type × tone × language
// cross-product. Slots: %[1]s product name, %[2]s category, %[3]s features,
// %[4]s audience, %[5]s price.
var fallbackTemplates = map[fallbackKey]string{
	{TypeDescription, ToneProfessional, LangEnglish}: "Introducing %[1]s, a premium %[2]s designed for %[4]s. This exceptional product features %[3]s. Experience the perfect blend of quality and innovation with %[1]s, available at %[5]s.",
	{TypeDescription, ToneProfessional, LangFrench}:  "Présentation de %[1]s, un %[2]s premium conçu pour %[4]s. Ce produit exceptionnel présente %[3]s. Découvrez le parfait équilibre entre qualité et innovation avec %[1]s, disponible à %[5]s.",
	{TypeDescription, TonePlayful, LangEnglish}:      "🎉 Meet %[1]s - the %[2]s that's about to become your new obsession! Perfect for %[4]s, it's packed with %[3]s. At %[5]s, get ready to fall in love! 💕",
	{TypeDescription, TonePlayful, LangFrench}:       "🎉 Rencontrez %[1]s - le %[2]s qui va devenir votre nouvelle obsession ! Parfait pour %[4]s, il est rempli de %[3]s. À %[5]s, préparez-vous à tomber amoureux ! 💕",
	{TypeDescription, ToneLuxury, LangEnglish}:       "Indulge in the exquisite %[1]s, a distinguished %[2]s crafted for discerning %[4]s. Featuring %[3]s, this masterpiece represents the pinnacle of luxury and sophistication at %[5]s.",
	{TypeDescription, ToneLuxury, LangFrench}:        "Savourez l'exquis %[1]s, un %[2]s distingué conçu pour %[4]s exigeants. Avec %[3]s, ce chef-d'œuvre à %[5]s représente le summum du luxe et de la sophistication.",
	{TypeDescription, ToneCasual, LangEnglish}:       "Hey there! Check out %[1]s - it's a pretty cool %[2]s that %[4]s are going to love. It's got %[3]s, it costs %[5]s, and honestly, it's just what you need.",
	{TypeDescription, ToneCasual, LangFrench}:        "Salut ! Découvrez %[1]s - c'est un %[2]s plutôt cool que %[4]s vont adorer. Il a %[3]s, il coûte %[5]s et honnêtement, c'est exactement ce dont vous avez besoin.",

	{TypeSocialPost, ToneProfessional, LangEnglish}: "Discover %[1]s - the %[2]s solution for %[4]s. Features include %[3]s, from %[5]s. #ProductLaunch #Innovation #Quality",
	{TypeSocialPost, ToneProfessional, LangFrench}:  "Découvrez %[1]s - la solution %[2]s pour %[4]s. Caractéristiques : %[3]s, à partir de %[5]s. #LancementProduit #Innovation #Qualité",
	{TypeSocialPost, TonePlayful, LangEnglish}:      "🚀 %[1]s is here and it's AMAZING! Perfect for %[4]s who want %[3]s. Yours from %[5]s. Who's excited? 🙋 #NewProduct #Excited #MustHave",
	{TypeSocialPost, TonePlayful, LangFrench}:       "🚀 %[1]s est là et c'est INCROYABLE ! Parfait pour %[4]s qui veulent %[3]s. À vous dès %[5]s. Qui est partant ? 🙋 #NouveauProduit #Excité #Indispensable",
	{TypeSocialPost, ToneLuxury, LangEnglish}:       "Experience the epitome of luxury with %[1]s. This exclusive %[2]s offers %[3]s for the most discerning %[4]s, from %[5]s. #Luxury #Exclusive #Premium",
	{TypeSocialPost, ToneLuxury, LangFrench}:        "Vivez l'épitomé du luxe avec %[1]s. Ce %[2]s exclusif offre %[3]s pour les %[4]s les plus exigeants, dès %[5]s. #Luxe #Exclusif #Premium",
	{TypeSocialPost, ToneCasual, LangEnglish}:       "Just tried %[1]s and wow! 😍 Great %[2]s for %[4]s. Love that it has %[3]s - and at %[5]s? Highly recommend! #Review #Recommendation",
	{TypeSocialPost, ToneCasual, LangFrench}:        "Je viens d'essayer %[1]s et wow ! 😍 Super %[2]s pour %[4]s. J'adore qu'il ait %[3]s - et à %[5]s ? Je recommande fortement ! #Avis #Recommandation",

	{TypeEmail, ToneProfessional, LangEnglish}: "Subject: Introducing %[1]s - The %[2]s Solution You've Been Waiting For\n\nDear Valued Customer,\n\nWe're excited to present %[1]s, a premium %[2]s designed specifically for %[4]s. This innovative product features %[3]s and is available today at %[5]s.\n\nBest regards,\nThe BrandBoost Team",
	{TypeEmail, ToneProfessional, LangFrench}:  "Objet : Présentation de %[1]s - La solution %[2]s que vous attendiez\n\nCher client,\n\nNous sommes ravis de vous présenter %[1]s, un %[2]s premium conçu spécifiquement pour %[4]s. Ce produit innovant présente %[3]s, disponible dès aujourd'hui à %[5]s.\n\nCordialement,\nL'équipe BrandBoost",
	{TypeEmail, TonePlayful, LangEnglish}:      "Subject: 🎉 %[1]s is HERE! (And it's amazing!)\n\nHey there!\n\nGuess what? %[1]s just dropped and it's everything %[4]s have been dreaming of! With %[3]s and a price of just %[5]s, this %[2]s is about to change your life! 💫\n\nCheers,\nThe BrandBoost Squad",
	{TypeEmail, TonePlayful, LangFrench}:       "Objet : 🎉 %[1]s est LÀ ! (Et c'est incroyable !)\n\nSalut !\n\nDevine quoi ? %[1]s vient de sortir et c'est tout ce dont %[4]s rêvaient ! Avec %[3]s et un prix de seulement %[5]s, ce %[2]s va changer votre vie ! 💫\n\nSalut,\nL'équipe BrandBoost",
	{TypeEmail, ToneLuxury, LangEnglish}:       "Subject: Exclusive Invitation: Discover %[1]s\n\nDear Esteemed Client,\n\nWe are honored to invite you to experience %[1]s, our most exclusive %[2]s offering at %[5]s. Crafted for the discerning %[4]s, it embodies %[3]s.\n\nWarm regards,\nBrandBoost Luxury Division",
	{TypeEmail, ToneLuxury, LangFrench}:        "Objet : Invitation exclusive : Découvrez %[1]s\n\nCher client estimé,\n\nNous avons l'honneur de vous inviter à découvrir %[1]s, notre offre %[2]s la plus exclusive à %[5]s. Conçu pour les %[4]s exigeants, il incarne %[3]s.\n\nCordialement,\nDivision Luxe BrandBoost",
	{TypeEmail, ToneCasual, LangEnglish}:       "Subject: You'll love %[1]s!\n\nHi!\n\nJust wanted to share something cool with you - %[1]s! It's this awesome %[2]s that %[4]s are totally into. The best part? It comes with %[3]s for %[5]s.\n\nTake care,\nThe BrandBoost Team",
	{TypeEmail, ToneCasual, LangFrench}:        "Objet : Vous allez adorer %[1]s !\n\nSalut !\n\nJe voulais juste partager quelque chose de cool avec toi - %[1]s ! C'est ce %[2]s génial que %[4]s adorent. Le meilleur ? Il vient avec %[3]s pour %[5]s.\n\nÀ bientôt,\nL'équipe BrandBoost",
}

// Fallback produces the deterministic template result for a request
// without any remote call. It is the last line of defense: for any request
// that passed validation it always yields non-empty text.
func Fallback(req Request, errorNote string) Result {
	return Result{
		Text:      FallbackText(req),
		Source:    SourceFallback,
		ErrorNote: errorNote,
		CreatedAt: time.Now(),
	}
}

// FallbackText renders the fallback template for the request. The same
// request always yields the same text.
func FallbackText(req Request) string {
	p := req.Product
	fr := req.Language == LangFrench

	name := p.Name
	category := strings.TrimSpace(p.Category)
	features := p.FeatureList()
	audience := strings.TrimSpace(p.Audience)

	if category == "" {
		category = "product"
		if fr {
			category = "produit"
		}
	}
	if features == "" {
		features = "thoughtfully chosen details"
		if fr {
			features = "des détails soigneusement choisis"
		}
	}
	if audience == "" {
		audience = "your customers"
		if fr {
			audience = "vos clients"
		}
	}

	price := fmt.Sprintf("€%.2f", p.Price)
	if fr {
		price = fmt.Sprintf("%.2f €", p.Price)
	}

	return fmt.Sprintf(fallbackTemplates[fallbackKey{req.Type, req.Tone, req.Language}],
		name, category, features, audience, price)
}
