// Package worker runs batches of questions through the engine
// concurrently.
package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"tourli/internal/model"
)

// Answerer defines the interface for answering one question
type Answerer interface {
	Answer(ctx context.Context, text string, topK int) []model.Answer
}

// QuestionJob answers one question from a batch
type QuestionJob struct {
	Index    int
	Question string
	Answerer Answerer
}

// Execute runs the job
func (j *QuestionJob) Execute(ctx context.Context) Result {
	answers := j.Answerer.Answer(ctx, j.Question, 1)
	if len(answers) == 0 {
		return &QuestionResult{
			Index:    j.Index,
			Question: j.Question,
			Error:    fmt.Errorf("no answer for %q", j.Question),
		}
	}
	return &QuestionResult{
		Index:    j.Index,
		Question: j.Question,
		Answer:   answers[0],
	}
}

// QuestionResult is one answered question, tagged with its input position
type QuestionResult struct {
	Index    int
	Question string
	Answer   model.Answer
	Error    error
}

// GetError returns the error from the result
func (r *QuestionResult) GetError() error {
	return r.Error
}

// BatchProcessor answers multiple questions concurrently
type BatchProcessor struct {
	answerer    Answerer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(answerer Answerer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		answerer:    answerer,
		concurrency: concurrency,
	}
}

// ProcessQuestions answers the questions concurrently, returning results
// in input order
func (b *BatchProcessor) ProcessQuestions(ctx context.Context, questions []string) []*QuestionResult {
	if len(questions) == 0 {
		return []*QuestionResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// submit from a separate goroutine so collection below keeps the
	// bounded queues moving on batches of any size
	go func() {
		for i, q := range questions {
			pool.Submit(&QuestionJob{Index: i, Question: q, Answerer: b.answerer})
		}
		pool.Close()
	}()

	out := make([]*QuestionResult, 0, len(questions))
	for result := range pool.Results() {
		out = append(out, result.(*QuestionResult))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ProcessFile reads questions from a file and answers them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*QuestionResult, error) {
	questions, err := ReadQuestionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return b.ProcessQuestions(ctx, questions), nil
}

// ReadQuestionsFromFile reads questions from a file (one per line),
// skipping blanks and # comments
func ReadQuestionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var questions []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		questions = append(questions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return questions, nil
}
