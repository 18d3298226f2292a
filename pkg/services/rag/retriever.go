package rag

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const defaultChunkSize = 500

// Retriever performs keyword-scored retrieval over a policy knowledge base.
// Documents are split into sentence-aligned chunks; a chunk's score is the
// number of query terms it contains.
type Retriever struct {
	chunks []string
}

// NewRetriever loads the knowledge base from a file.
func NewRetriever(path string) (*Retriever, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}
	return NewRetrieverFromText(string(raw)), nil
}

func NewRetrieverFromText(text string) *Retriever {
	return &Retriever{chunks: chunkDocument(text, defaultChunkSize)}
}

// chunkDocument splits on sentence boundaries, packing sentences into chunks
// of roughly chunkSize characters.
func chunkDocument(text string, chunkSize int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, sentence := range strings.Split(text, ".") {
		if current.Len()+len(sentence) < chunkSize {
			current.WriteString(sentence)
			current.WriteString(".")
			continue
		}
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(".")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks
}

// Retrieve returns up to topK chunks relevant to the query, most relevant
// first. Chunks matching no query term are never returned.
func (r *Retriever) Retrieve(query string, topK int) []string {
	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		chunk string
		score int
	}
	var matches []scored
	for _, chunk := range r.chunks {
		lower := strings.ToLower(chunk)
		score := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{chunk: chunk, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if topK > len(matches) {
		topK = len(matches)
	}
	results := make([]string, 0, topK)
	for _, m := range matches[:topK] {
		results = append(results, m.chunk)
	}
	return results
}

// AugmentPrompt prepends retrieved context to a prompt. The query defaults to
// the prompt itself.
func (r *Retriever) AugmentPrompt(prompt, query string) string {
	if query == "" {
		query = prompt
	}
	context := r.Retrieve(query, 3)
	if len(context) == 0 {
		return prompt
	}

	return fmt.Sprintf(`Relevant sustainability policies and best practices:

%s

%s`, strings.Join(context, "\n\n"), prompt)
}
