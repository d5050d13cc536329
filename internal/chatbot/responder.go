// Package chatbot maps a user message to a canned supportive response.
//
// Rules are checked in order; the first rule with a keyword occurring in
// the message wins and one of its responses is picked uniformly. No state
// is kept between calls.
package chatbot

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-set/v3"
)

type rule struct {
	keywords  *set.Set[string]
	responses []string
}

type Responder struct {
	mu       sync.Mutex // rand.Rand is not safe for concurrent use
	rng      *rand.Rand
	rules    []rule
	fallback string
}

// New builds a Responder. Pass a seeded rng for deterministic picks in
// tests; nil gets a time-seeded source.
func New(rng *rand.Rand) *Responder {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}

	return &Responder{
		rng: rng,
		rules: []rule{
			{
				keywords: set.From([]string{"stress", "anxious"}),
				responses: []string{
					"I'm sorry you're feeling stressed. Try a 4-4-4 breathing exercise.",
					"Stress is hard. Would you like a short grounding exercise?",
					"Try to take a small break and breathe; I'm here to listen.",
				},
			},
			{
				keywords: set.From([]string{"sad", "depressed"}),
				responses: []string{
					"I'm really sorry you're feeling down. Talking to someone trusted may help.",
					"Would you like suggestions for small activities that often help a bit?",
					"You are not alone. I can suggest resources if you'd like.",
				},
			},
			{
				keywords: set.From([]string{"happy", "good"}),
				responses: []string{
					"That's wonderful! What contributed to your good mood today?",
					"Great to hear! Sharing it can amplify the positive feeling.",
				},
			},
			{
				keywords: set.From([]string{"tired", "sleep"}),
				responses: []string{
					"Rest is important. Can you try a short nap or a break?",
					"Hydration and a short walk sometimes helps with fatigue.",
				},
			},
		},
		fallback: "Thanks for sharing. Would you like a relaxation or grounding exercise?",
	}
}

// Reply returns a response for the message. Keyword matching is
// case-insensitive and matches substrings, so "stressed" triggers "stress".
func (r *Responder) Reply(message string) string {
	lowered := strings.ToLower(message)

	for _, ru := range r.rules {
		matched := false
		for kw := range ru.keywords.Items() {
			if strings.Contains(lowered, kw) {
				matched = true
				break
			}
		}
		if matched {
			return ru.responses[r.pick(len(ru.responses))]
		}
	}

	return r.fallback
}

func (r *Responder) pick(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
