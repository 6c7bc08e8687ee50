package content

type recommendKey struct {
	Type ContentType
	Tone Tone
}

// recommendations pairs each content type with guidance on when its tones
// work best. Shown alongside generated copy so users can judge the pairing.
var recommendations = map[recommendKey]string{
	{TypeDescription, ToneProfessional}: "Professional tone is recommended for product pages to boost SEO and build credibility with customers.",
	{TypeDescription, TonePlayful}:      "Playful tone works great for lifestyle products and social media integration to increase engagement.",
	{TypeDescription, ToneLuxury}:       "Luxury tone is perfect for premium products to justify higher prices and attract affluent customers.",
	{TypeDescription, ToneCasual}:       "Casual tone helps make products more approachable and relatable to everyday consumers.",

	{TypeSocialPost, ToneProfessional}: "Professional tone is ideal for LinkedIn and B2B platforms to maintain brand authority.",
	{TypeSocialPost, TonePlayful}:      "Playful tone is best for social media campaigns to increase engagement and shareability.",
	{TypeSocialPost, ToneLuxury}:       "Luxury tone creates aspirational content that drives premium brand perception.",
	{TypeSocialPost, ToneCasual}:       "Casual tone builds authentic connections and encourages user-generated content.",

	{TypeEmail, ToneProfessional}: "Professional tone builds trust and is perfect for transactional and informational emails.",
	{TypeEmail, TonePlayful}:      "Playful tone increases open rates and engagement in promotional campaigns.",
	{TypeEmail, ToneLuxury}:       "Luxury tone creates exclusivity and drives high-value customer actions.",
	{TypeEmail, ToneCasual}:       "Casual tone improves deliverability and creates personal connections with subscribers.",
}

// Recommendation returns pairing guidance for a content type and tone,
// or an empty string when the pair is unknown.
func Recommendation(ct ContentType, tone Tone) string {
	return recommendations[recommendKey{ct, tone}]
}
