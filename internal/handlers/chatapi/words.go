package chatapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-set/v3"

	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/storage"
)

const topWords = 20

// Filler words that would otherwise dominate every frequency list.
var stopwords = set.From([]string{
	"a", "an", "and", "am", "are", "as", "at", "be", "but", "by", "do",
	"for", "i", "im", "in", "is", "it", "me", "my", "of", "on", "or",
	"so", "that", "the", "this", "to", "was", "we", "with", "you",
})

type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func countWords(messages []string) []wordCount {
	counts := map[string]int{}
	for _, msg := range messages {
		for _, w := range strings.Fields(strings.ToLower(msg)) {
			w = strings.Trim(w, `.,!?;:"'`)
			if w == "" || stopwords.Contains(w) {
				continue
			}
			counts[w]++
		}
	}

	out := make([]wordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, wordCount{Word: w, Count: n})
	}
	// Highest count first, ties alphabetical so output is stable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if len(out) > topWords {
		out = out[:topWords]
	}
	return out
}

func (h *Handlers) handleChatWords(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if cached, ok := h.cache.Get("chat-words", user.ID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	messages, err := storage.ListChatMessageTextsByUser(h.db, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load chat messages for word frequency")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	words := countWords(messages)
	h.cache.Set("chat-words", user.ID, words)
	c.JSON(http.StatusOK, words)
}
