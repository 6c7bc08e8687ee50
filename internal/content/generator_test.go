package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go"
)

const usableReply = "An exquisite wool scarf, hand-woven from merino to keep every commute warm."

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     2,
		Timeout:        time.Second,
		BackoffBase:    time.Second,
		BackoffCap:     8 * time.Second,
		MinResponseLen: 20,
	}
}

// newTestGenerator wires a generator whose sleeps are recorded instead of
// actually waiting.
func newTestGenerator(llm LLM, policy RetryPolicy) (*Generator, *[]time.Duration) {
	g := NewGenerator(llm, DefaultLLMConfig(), policy)
	delays := &[]time.Duration{}
	g.sleep = func(d time.Duration) { *delays = append(*delays, d) }
	return g, delays
}

func TestGenerator_RemoteSuccess(t *testing.T) {
	mock := NewMockLLM("  " + usableReply + "\n")
	gen, delays := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if res.Source != SourceRemote {
		t.Errorf("source = %q, want %q", res.Source, SourceRemote)
	}
	if res.Text != usableReply {
		t.Errorf("text not trimmed: %q", res.Text)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
	if res.Model != DefaultLLMConfig().Model {
		t.Errorf("model = %q", res.Model)
	}
	if res.ErrorNote != "" {
		t.Errorf("unexpected error note %q", res.ErrorNote)
	}
	if len(*delays) != 0 {
		t.Errorf("first attempt slept %d times", len(*delays))
	}
	if !strings.Contains(mock.LastPrompt, "Wool Scarf") {
		t.Errorf("prompt missing product name:\n%s", mock.LastPrompt)
	}
}

func TestGenerator_RetriesThenSucceeds(t *testing.T) {
	mock := NewScriptedLLM(
		MockReply{Err: &openai.Error{StatusCode: 500}},
		MockReply{Err: &openai.Error{StatusCode: 503}},
		MockReply{Text: usableReply},
	)
	policy := testPolicy()
	policy.MaxRetries = 3
	gen, delays := newTestGenerator(mock, policy)

	req := testRequest()
	req.Tone = ToneLuxury

	res, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if res.Source != SourceRemote {
		t.Fatalf("source = %q, want %q (note %q)", res.Source, SourceRemote, res.ErrorNote)
	}
	if res.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", res.Attempts)
	}
	if mock.Calls != 3 {
		t.Errorf("mock calls = %d, want 3", mock.Calls)
	}

	if len(*delays) != 2 {
		t.Fatalf("slept %d times, want 2", len(*delays))
	}
	bounds := []time.Duration{time.Second, 2 * time.Second}
	for i, lo := range bounds {
		if d := (*delays)[i]; d < lo || d >= lo+backoffJitter {
			t.Errorf("delay %d = %s, want [%s, %s)", i, d, lo, lo+backoffJitter)
		}
	}
}

func TestGenerator_ServerErrorFallsBack(t *testing.T) {
	mock := NewScriptedLLM(MockReply{Err: &openai.Error{StatusCode: 500}})
	gen, delays := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceFallback)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
	if len(*delays) != 1 {
		t.Errorf("slept %d times, want 1", len(*delays))
	}
	if !strings.Contains(res.ErrorNote, "HTTP 500") {
		t.Errorf("error note = %q", res.ErrorNote)
	}
	if !strings.Contains(res.Text, "Wool Scarf") {
		t.Errorf("fallback text missing product name:\n%s", res.Text)
	}
}

func TestGenerator_BadRequestDoesNotRetry(t *testing.T) {
	mock := NewScriptedLLM(MockReply{Err: &openai.Error{StatusCode: 400}})
	gen, delays := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceFallback)
	}
	if mock.Calls != 1 {
		t.Errorf("mock calls = %d, want 1", mock.Calls)
	}
	if len(*delays) != 0 {
		t.Errorf("slept %d times, want 0", len(*delays))
	}
	if !strings.Contains(res.ErrorNote, "HTTP 400") {
		t.Errorf("error note = %q", res.ErrorNote)
	}
}

func TestGenerator_RateLimitRetries(t *testing.T) {
	mock := NewScriptedLLM(
		MockReply{Err: &openai.Error{StatusCode: 429}},
		MockReply{Text: usableReply},
	)
	gen, _ := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Source != SourceRemote {
		t.Errorf("source = %q, want %q (note %q)", res.Source, SourceRemote, res.ErrorNote)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
}

func TestGenerator_TimeoutFallsBack(t *testing.T) {
	mock := NewMockLLMWithError(context.DeadlineExceeded)
	gen, _ := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceFallback)
	}
	if mock.Calls != 2 {
		t.Errorf("mock calls = %d, want 2", mock.Calls)
	}
	if !strings.Contains(res.ErrorNote, "timed out") {
		t.Errorf("error note = %q", res.ErrorNote)
	}
	if !strings.Contains(res.Text, "Wool Scarf") {
		t.Errorf("fallback text missing product name:\n%s", res.Text)
	}
}

func TestGenerator_ShortResponseRetries(t *testing.T) {
	mock := NewScriptedLLM(
		MockReply{Text: "ok"},
		MockReply{Text: usableReply},
	)
	gen, _ := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Source != SourceRemote {
		t.Errorf("source = %q, want %q (note %q)", res.Source, SourceRemote, res.ErrorNote)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
}

func TestGenerator_GibberishResponseRetries(t *testing.T) {
	mock := NewScriptedLLM(
		MockReply{Text: "12345 67890 ... 0000 ###"},
		MockReply{Text: usableReply},
	)
	gen, _ := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Source != SourceRemote {
		t.Errorf("source = %q, want %q (note %q)", res.Source, SourceRemote, res.ErrorNote)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
}

func TestGenerator_EmptyResponseExhaustsBudget(t *testing.T) {
	mock := NewMockLLM("   ")
	gen, _ := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceFallback)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
	if !strings.Contains(res.ErrorNote, "empty response") {
		t.Errorf("error note = %q", res.ErrorNote)
	}
}

func TestGenerator_InvalidRequest(t *testing.T) {
	mock := NewMockLLM(usableReply)
	gen, _ := newTestGenerator(mock, testPolicy())

	req := testRequest()
	req.Tone = "sarcastic"
	if _, err := gen.Generate(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}

	req = testRequest()
	req.Type = TypeEmail
	req.Product.Attributes = []string{"hand-woven merino"}
	if _, err := gen.Generate(context.Background(), req); !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("expected ErrMissingAttribute, got %v", err)
	}

	if mock.Calls != 0 {
		t.Errorf("invalid requests reached the LLM %d times", mock.Calls)
	}
}

func TestGenerator_NilLLM(t *testing.T) {
	gen := NewGenerator(nil, DefaultLLMConfig(), testPolicy())
	if _, err := gen.Generate(context.Background(), testRequest()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockLLM(usableReply)
	gen, _ := newTestGenerator(mock, testPolicy())

	res, err := gen.Generate(ctx, testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceFallback)
	}
	if res.Attempts != 0 {
		t.Errorf("attempts = %d, want 0", res.Attempts)
	}
	if mock.Calls != 0 {
		t.Errorf("cancelled request reached the LLM %d times", mock.Calls)
	}
	if !strings.Contains(res.ErrorNote, "cancelled") {
		t.Errorf("error note = %q", res.ErrorNote)
	}
}

func TestGenerator_ElapsedUsesInjectedClock(t *testing.T) {
	gen, _ := newTestGenerator(NewMockLLM(usableReply), testPolicy())

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	gen.now = func() time.Time {
		now = now.Add(150 * time.Millisecond)
		return now
	}

	res, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Elapsed != 150*time.Millisecond {
		t.Errorf("elapsed = %s, want 150ms", res.Elapsed)
	}
	if res.CreatedAt.IsZero() {
		t.Error("result missing timestamp")
	}
}

func TestGenerator_BackoffSchedule(t *testing.T) {
	gen, _ := newTestGenerator(NewMockLLM(usableReply), testPolicy())

	cases := []struct {
		attempt int
		floor   time.Duration
	}{
		{2, time.Second},
		{3, 2 * time.Second},
		{4, 4 * time.Second},
		{5, 8 * time.Second},
		{6, 8 * time.Second},
	}
	for _, tc := range cases {
		d := gen.backoff(tc.attempt)
		if d < tc.floor || d >= tc.floor+backoffJitter {
			t.Errorf("backoff(%d) = %s, want [%s, %s)", tc.attempt, d, tc.floor, tc.floor+backoffJitter)
		}
	}
}

func TestMockLLM_Generate(t *testing.T) {
	ctx := context.Background()

	fixed := NewMockLLM("fixed copy")
	if got, err := fixed.Generate(ctx, "anything"); err != nil || got != "fixed copy" {
		t.Errorf("fixed mock returned %q, %v", got, err)
	}

	boom := errors.New("boom")
	failing := NewMockLLMWithError(boom)
	if _, err := failing.Generate(ctx, "anything"); !errors.Is(err, boom) {
		t.Errorf("failing mock returned %v", err)
	}

	byDefault := NewMockLLM("")
	got, err := byDefault.Generate(ctx, "Product: Wool Scarf\nCategory: Accessories\n")
	if err != nil {
		t.Fatalf("default mock returned error: %v", err)
	}
	if !strings.Contains(got, "Wool Scarf") {
		t.Errorf("default mock copy missing product name: %q", got)
	}

	scripted := NewScriptedLLM(MockReply{Text: "first"}, MockReply{Text: "second"})
	for _, want := range []string{"first", "second", "second"} {
		got, err := scripted.Generate(ctx, "anything")
		if err != nil || got != want {
			t.Errorf("scripted mock returned %q, %v, want %q", got, err, want)
		}
	}
	if scripted.Calls != 3 {
		t.Errorf("scripted mock counted %d calls, want 3", scripted.Calls)
	}
}
