package content

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/openai/openai-go"
)

// ErrUnusableResponse marks a model reply that came back but cannot be
// shown to a user: empty, too short, or without alphabetic content.
var ErrUnusableResponse = errors.New("unusable model response")

// backoffJitter is the upper bound of the random delay added to each
// backoff wait so that concurrent callers do not retry in lockstep.
const backoffJitter = 250 * time.Millisecond

// RetryPolicy controls how the generator retries remote calls.
type RetryPolicy struct {
	// MaxRetries is the total number of attempts, including the first.
	MaxRetries int
	// Timeout bounds each individual attempt. Zero disables the bound.
	Timeout time.Duration
	// BackoffBase is the wait before the second attempt. Each further
	// attempt doubles it, up to BackoffCap.
	BackoffBase time.Duration
	BackoffCap  time.Duration
	// MinResponseLen is the minimum rune count of a usable reply.
	MinResponseLen int
}

// DefaultRetryPolicy returns the retry settings used when none are
// configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     2,
		Timeout:        15 * time.Second,
		BackoffBase:    time.Second,
		BackoffCap:     8 * time.Second,
		MinResponseLen: 20,
	}
}

// Generator produces marketing copy for a request. It asks the configured
// LLM first and falls back to the deterministic templates when the remote
// side cannot deliver usable text, so callers always get a result.
type Generator struct {
	llm    LLM
	config LLMConfig
	policy RetryPolicy

	sleep func(time.Duration)
	now   func() time.Time
}

// NewGenerator creates a Generator around the given LLM.
func NewGenerator(llm LLM, config LLMConfig, policy RetryPolicy) *Generator {
	if policy.MaxRetries < 1 {
		policy.MaxRetries = 1
	}
	return &Generator{
		llm:    llm,
		config: config,
		policy: policy,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Generate builds the prompt for req, calls the LLM with retries, and
// returns the resulting copy. Remote failures never surface as errors:
// after the attempt budget is spent the deterministic fallback is returned
// with the last failure recorded in the result's ErrorNote. Only invalid
// requests produce an error.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if g.llm == nil {
		return Result{}, fmt.Errorf("%w: LLM is required", ErrInvalidConfig)
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return Result{}, err
	}

	start := g.now()
	attempts := 0
	lastNote := ""

	for attempt := 1; attempt <= g.policy.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			lastNote = fmt.Sprintf("request cancelled: %v", ctx.Err())
			break
		}
		if attempt > 1 {
			g.sleep(g.backoff(attempt))
		}
		attempts = attempt

		text, err := g.attempt(ctx, prompt)
		if err == nil {
			return Result{
				Text:      strings.TrimSpace(text),
				Source:    SourceRemote,
				Model:     g.config.Model,
				Attempts:  attempts,
				Elapsed:   g.now().Sub(start),
				CreatedAt: g.now(),
			}, nil
		}

		lastNote = g.describeFailure(err)
		if isTerminal(err) {
			break
		}
	}

	res := Fallback(req, lastNote)
	res.Model = g.config.Model
	res.Attempts = attempts
	res.Elapsed = g.now().Sub(start)
	return res, nil
}

// attempt performs one bounded LLM call and validates the reply.
func (g *Generator) attempt(ctx context.Context, prompt string) (string, error) {
	if g.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.policy.Timeout)
		defer cancel()
	}

	text, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := g.checkResponse(text); err != nil {
		return "", err
	}
	return text, nil
}

// checkResponse rejects replies that passed transport but are not
// presentable copy. Such replies consume an attempt like any other failure.
func (g *Generator) checkResponse(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: empty response", ErrUnusableResponse)
	}
	if g.policy.MinResponseLen > 0 && utf8.RuneCountInString(trimmed) < g.policy.MinResponseLen {
		return fmt.Errorf("%w: response shorter than %d characters", ErrUnusableResponse, g.policy.MinResponseLen)
	}
	if !containsLetter(trimmed) {
		return fmt.Errorf("%w: response has no alphabetic content", ErrUnusableResponse)
	}
	return nil
}

// isTerminal reports whether retrying cannot help: client-side request
// errors other than rate limiting, or a misconfigured client. Network
// faults, timeouts, server errors, and unusable replies stay retryable.
func isTerminal(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return false
		}
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return false
		}
		return apiErr.StatusCode >= http.StatusBadRequest
	}
	return errors.Is(err, ErrInvalidConfig)
}

// describeFailure renders a short human-readable note for the result.
func (g *Generator) describeFailure(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("remote endpoint returned HTTP %d", apiErr.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("attempt timed out after %s", g.policy.Timeout)
	}
	return err.Error()
}

// backoff returns the wait before the given attempt (2 or later):
// BackoffBase doubled per prior retry, capped, plus jitter.
func (g *Generator) backoff(attempt int) time.Duration {
	shift := attempt - 2
	if shift > 20 {
		shift = 20
	}
	d := g.policy.BackoffBase << shift
	if g.policy.BackoffCap > 0 && d > g.policy.BackoffCap {
		d = g.policy.BackoffCap
	}
	return d + time.Duration(rand.Int63n(int64(backoffJitter)))
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
