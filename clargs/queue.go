package clargs

// tokenQueue is a left-to-right view over the arguments still to be parsed.
// It never copies the backing slice; dequeuing only advances the head.
type tokenQueue struct {
	tokens []string
	head   int
}

func newTokenQueue(tokens []string) *tokenQueue {
	return &tokenQueue{tokens: tokens}
}

func (q *tokenQueue) len() int    { return len(q.tokens) - q.head }
func (q *tokenQueue) empty() bool { return q.len() == 0 }

// front returns the next token without consuming it.
func (q *tokenQueue) front() string {
	if q.empty() {
		panic("clargs: front on empty token queue")
	}
	return q.tokens[q.head]
}

// dequeue consumes and returns the next token.
func (q *tokenQueue) dequeue() string {
	tok := q.front()
	q.head++
	return tok
}

// dequeueN consumes n tokens.
func (q *tokenQueue) dequeueN(n int) {
	if n < 0 || n > q.len() {
		panic("clargs: dequeue past end of token queue")
	}
	q.head += n
}

// consumed returns the number of tokens already taken from the queue.
func (q *tokenQueue) consumed() int { return q.head }
