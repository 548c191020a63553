package clargs

import "testing"

func TestTokenQueue(t *testing.T) {
	q := newTokenQueue([]string{"--file", "data.txt", "-v"})
	if q.len() != 3 || q.empty() {
		t.Fatalf("expected 3 tokens, got %d", q.len())
	}
	if q.front() != "--file" {
		t.Errorf("front = %q, want --file", q.front())
	}
	if q.dequeue() != "--file" || q.dequeue() != "data.txt" {
		t.Error("dequeue should return tokens left to right")
	}
	if q.consumed() != 2 {
		t.Errorf("consumed = %d, want 2", q.consumed())
	}
	q.dequeueN(1)
	if !q.empty() {
		t.Errorf("queue should be empty, %d left", q.len())
	}
}

func TestTokenQueueMisusePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(q *tokenQueue)
	}{
		{"front", func(q *tokenQueue) { q.front() }},
		{"dequeue", func(q *tokenQueue) { q.dequeue() }},
		{"dequeueN", func(q *tokenQueue) { q.dequeueN(1) }},
		{"negative", func(q *tokenQueue) { q.dequeueN(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(newTokenQueue(nil))
		})
	}
}
