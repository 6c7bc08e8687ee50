// Package content implements the copy generation pipeline: prompt
// construction, remote generation with retry and backoff, deterministic
// fallback templates and per-combination recommendations.
package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brandboost/brandboost/internal/catalog"
)

var (
	ErrInvalidRequest   = errors.New("invalid generation request")
	ErrMissingAttribute = errors.New("product missing required attribute")
)

// ContentType selects the kind of copy to produce.
type ContentType string

const (
	TypeDescription ContentType = "description"
	TypeSocialPost  ContentType = "social_post"
	TypeEmail       ContentType = "email"
)

// ContentTypes lists every supported content type.
var ContentTypes = []ContentType{TypeDescription, TypeSocialPost, TypeEmail}

// IsValid reports whether the content type is a supported member.
func (c ContentType) IsValid() bool {
	switch c {
	case TypeDescription, TypeSocialPost, TypeEmail:
		return true
	}
	return false
}

// Tone selects the voice of the copy.
type Tone string

const (
	ToneProfessional Tone = "professional"
	TonePlayful      Tone = "playful"
	ToneLuxury       Tone = "luxury"
	ToneCasual       Tone = "casual"
)

// Tones lists every supported tone.
var Tones = []Tone{ToneProfessional, TonePlayful, ToneLuxury, ToneCasual}

// IsValid reports whether the tone is a supported member.
func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, TonePlayful, ToneLuxury, ToneCasual:
		return true
	}
	return false
}

// Language selects the output language.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// Languages lists every supported language.
var Languages = []Language{LangEnglish, LangFrench}

// IsValid reports whether the language is a supported member.
func (l Language) IsValid() bool {
	switch l {
	case LangEnglish, LangFrench:
		return true
	}
	return false
}

// Source records which path produced a result.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// ParseContentType maps user input onto a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "description", "product description", "product_description", "product-description":
		return TypeDescription, nil
	case "social", "social post", "social_post", "social-post", "post":
		return TypeSocialPost, nil
	case "email":
		return TypeEmail, nil
	}
	return "", fmt.Errorf("%w: unknown content type %q", ErrInvalidRequest, s)
}

// ParseTone maps user input onto a Tone.
func ParseTone(s string) (Tone, error) {
	tone := Tone(strings.ToLower(strings.TrimSpace(s)))
	if !tone.IsValid() {
		return "", fmt.Errorf("%w: unknown tone %q", ErrInvalidRequest, s)
	}
	return tone, nil
}

// ParseLanguage maps user input onto a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return LangEnglish, nil
	case "fr", "french", "francais", "français":
		return LangFrench, nil
	}
	return "", fmt.Errorf("%w: unknown language %q", ErrInvalidRequest, s)
}

// Request fully determines prompt text and fallback template selection.
type Request struct {
	Product  catalog.Product `json:"product"`
	Type     ContentType     `json:"content_type"`
	Tone     Tone            `json:"tone"`
	Language Language        `json:"language"`
}

// Validate checks enumeration membership and per-type required product
// attributes. It runs before any network attempt.
func (r Request) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: unknown content type %q", ErrInvalidRequest, r.Type)
	}
	if !r.Tone.IsValid() {
		return fmt.Errorf("%w: unknown tone %q", ErrInvalidRequest, r.Tone)
	}
	if !r.Language.IsValid() {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidRequest, r.Language)
	}
	if strings.TrimSpace(r.Product.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidRequest)
	}
	if r.Type == TypeEmail && r.Product.Attribute("cta") == "" {
		return fmt.Errorf("%w: email copy needs a %q attribute on product %s", ErrMissingAttribute, "cta", r.Product.Name)
	}
	return nil
}

// Result is the outcome of one generation request. Created once, never
// mutated afterwards; consumed by analytics, export and the serving
// surfaces.
type Result struct {
	// Text is the generated copy. Never empty.
	Text string `json:"text"`

	// Source records whether the text came from the remote model or the
	// fallback templates.
	Source Source `json:"source"`

	// Model is the model identifier the generator was configured with.
	Model string `json:"model,omitempty"`

	// Attempts is the number of remote calls made for this request.
	Attempts int `json:"attempts"`

	// Elapsed is the wall time of the whole operation.
	Elapsed time.Duration `json:"elapsed"`

	// ErrorNote describes the last remote failure. Set only when Source
	// is SourceFallback.
	ErrorNote string `json:"error_note,omitempty"`

	// CreatedAt is when this result was produced.
	CreatedAt time.Time `json:"created_at"`
}
