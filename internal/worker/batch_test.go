package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tourli/internal/model"
)

// echoAnswerer answers every question with its own text, after an
// optional delay to shake out ordering bugs
type echoAnswerer struct {
	delay time.Duration
}

func (a *echoAnswerer) Answer(_ context.Context, text string, _ int) []model.Answer {
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
	return []model.Answer{{Text: "echo: " + text, Score: 0.9}}
}

func TestProcessQuestionsPreservesOrder(t *testing.T) {
	questions := make([]string, 20)
	for i := range questions {
		questions[i] = fmt.Sprintf("question %d", i)
	}

	b := NewBatchProcessor(&echoAnswerer{delay: time.Millisecond}, 4)
	results := b.ProcessQuestions(context.Background(), questions)

	if len(results) != len(questions) {
		t.Fatalf("got %d results, want %d", len(results), len(questions))
	}
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("result %d has index %d", i, r.Index)
		}
		if r.Question != questions[i] {
			t.Errorf("result %d question = %q, want %q", i, r.Question, questions[i])
		}
		if r.Answer.Text != "echo: "+questions[i] {
			t.Errorf("result %d answer = %q", i, r.Answer.Text)
		}
	}
}

func TestProcessQuestionsLargeBatch(t *testing.T) {
	// well past the combined queue and worker capacity, so the batch
	// only completes when submission and collection overlap
	questions := make([]string, 100)
	for i := range questions {
		questions[i] = fmt.Sprintf("question %d", i)
	}

	b := NewBatchProcessor(&echoAnswerer{delay: time.Millisecond}, 4)

	done := make(chan []*QuestionResult, 1)
	go func() {
		done <- b.ProcessQuestions(context.Background(), questions)
	}()

	var results []*QuestionResult
	select {
	case results = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("batch stalled; submission is blocking on a full queue")
	}

	if len(results) != len(questions) {
		t.Fatalf("got %d results, want %d", len(results), len(questions))
	}
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("result %d has index %d", i, r.Index)
		}
	}
}

func TestProcessQuestionsEmpty(t *testing.T) {
	b := NewBatchProcessor(&echoAnswerer{}, 2)
	if results := b.ProcessQuestions(context.Background(), nil); len(results) != 0 {
		t.Errorf("empty input should give empty results, got %d", len(results))
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.txt")
	content := "# sample questions\n\nbest beaches in agadir\nhow far is rabat from fes\n\n# trailing comment\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	b := NewBatchProcessor(&echoAnswerer{}, 2)
	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (comments and blanks skipped)", len(results))
	}
	if results[0].Question != "best beaches in agadir" {
		t.Errorf("first question = %q", results[0].Question)
	}
}

func TestProcessFileMissing(t *testing.T) {
	b := NewBatchProcessor(&echoAnswerer{}, 2)
	if _, err := b.ProcessFile(context.Background(), "/nonexistent/questions.txt"); err == nil {
		t.Error("missing file should be an error")
	}
}
