package view

import (
	"math/rand"
	"sync"
)

// CannedReplies are the assistant answers a chat session chooses from.
var CannedReplies = []string{
	"That's a great question! Based on the document, the key concept relates to how information is structured and organized for better understanding.",
	"According to the document, there are three main aspects to consider. First, the foundational principles, second, the practical applications, and third, the expected outcomes.",
	"You're on the right track! The document does mention that relationship. Let me explain it in more detail...",
	"Excellent question for testing your knowledge. Think about how the concepts in section 2 relate to the examples in section 4.",
	"I'd recommend focusing on understanding the core principles first, then moving on to the practical applications. The document emphasizes the importance of this approach.",
}

// ReplyPicker chooses the next assistant reply.
type ReplyPicker interface {
	Pick() string
}

// RandomPicker picks uniformly from CannedReplies. Two pickers built with the
// same seed return the same sequence.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return CannedReplies[p.rng.Intn(len(CannedReplies))]
}

// FixedPicker always answers with CannedReplies[i], wrapping around.
type FixedPicker int

func (p FixedPicker) Pick() string {
	i := int(p) % len(CannedReplies)
	if i < 0 {
		i += len(CannedReplies)
	}
	return CannedReplies[i]
}
