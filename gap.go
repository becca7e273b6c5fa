package main

import (
	"context"
	"log/slog"
	"math"
)

// Policy constants, not tunables derived from the embedding model.
const (
	similarityThreshold = 0.70
	fallbackPriority    = 0.8
)

// AnalyzeGaps reports which required skills the user's skills do not cover.
// Primary path embeds both lists and compares pairwise cosine similarity:
// embeddings absorb synonymy ("JS" vs "JavaScript") that exact matching
// cannot. If the embedding service fails, the fallback is a case-insensitive
// membership check with a fixed priority. Required skills keep input order.
func AnalyzeGaps(ctx context.Context, emb Embedder, userSkills, requiredSkills []string) []MissingSkill {
	if len(userSkills) == 0 || len(requiredSkills) == 0 {
		return nil
	}

	logger := slog.With("component", "gap")

	userVecs, err := emb.Embed(ctx, userSkills)
	var reqVecs [][]float32
	if err == nil {
		reqVecs, err = emb.Embed(ctx, requiredSkills)
	}
	if err != nil {
		logger.Warn("embedding unavailable, using membership fallback", "error", err)
		return keywordGaps(userSkills, requiredSkills)
	}

	missing := []MissingSkill{}
	for i, required := range requiredSkills {
		best := -1.0
		for j := range userSkills {
			if sim := cosineSimilarity(reqVecs[i], userVecs[j]); sim > best {
				best = sim
			}
		}
		if best < similarityThreshold {
			missing = append(missing, MissingSkill{
				Skill:    required,
				Priority: round2(1 - best),
			})
		}
	}
	return missing
}

func keywordGaps(userSkills, requiredSkills []string) []MissingSkill {
	missing := []MissingSkill{}
	for _, required := range requiredSkills {
		if !containsSkill(userSkills, required) {
			missing = append(missing, MissingSkill{Skill: required, Priority: fallbackPriority})
		}
	}
	return missing
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
