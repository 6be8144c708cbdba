package document

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	chunkSize    = 4000
	chunkOverlap = 400
)

// SelectRelevant trims a document that exceeds the prompt budget down to the
// chunks most relevant to the question, scored by question-term overlap.
// Documents within budget pass through untouched, so the minimal pipeline
// contract holds regardless of this stage.
func SelectRelevant(text, question string, budget int) string {
	if budget <= 0 || len(text) <= budget {
		return text
	}

	chunks := splitChunks(text, chunkSize, chunkOverlap)
	terms := questionTerms(question)

	type scored struct {
		index int
		score int
	}

	ranked := make([]scored, len(chunks))
	for i, chunk := range chunks {
		ranked[i] = scored{index: i, score: overlapScore(chunk, terms)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	// Take the best-scoring chunks up to the budget, then restore document
	// order so the prompt reads coherently.
	var picked []int
	used := 0
	for _, rc := range ranked {
		if used+len(chunks[rc.index]) > budget && len(picked) > 0 {
			continue
		}
		picked = append(picked, rc.index)
		used += len(chunks[rc.index])
		if used >= budget {
			break
		}
	}
	sort.Ints(picked)

	parts := make([]string, len(picked))
	for i, idx := range picked {
		parts[i] = chunks[idx]
	}

	return strings.Join(parts, "\n...\n")
}

func splitChunks(text string, size, overlap int) []string {
	if size <= 0 || len(text) <= size {
		return []string{text}
	}

	step := size - overlap
	if step <= 0 {
		step = size
	}

	var chunks []string
	for start := 0; start < len(text); {
		end := start + size
		if end >= len(text) {
			end = len(text)
		} else {
			// Never cut a multi-byte rune at the boundary
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
		}
		chunks = append(chunks, text[start:end])
		if end == len(text) {
			break
		}

		start += step
		for start < len(text) && !utf8.RuneStart(text[start]) {
			start++
		}
	}

	return chunks
}

func questionTerms(question string) []string {
	fields := strings.Fields(strings.ToLower(question))

	var terms []string
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()")
		// Short words carry no signal
		if len(f) >= 4 {
			terms = append(terms, f)
		}
	}

	return terms
}

func overlapScore(chunk string, terms []string) int {
	lower := strings.ToLower(chunk)

	score := 0
	for _, term := range terms {
		score += strings.Count(lower, term)
	}

	return score
}
