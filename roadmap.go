package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

const (
	roadmapHours         = 2
	fallbackDaysPerSkill = 3
)

// Synthesize turns a gap list into a day-by-day roadmap. Primary path asks
// the generative service for a JSON array and normalizes each entry; on any
// service or parse failure it builds a deterministic offline roadmap instead.
// The batch job depends on that: an upstream outage must never block it.
func Synthesize(ctx context.Context, c Completer, missing []MissingSkill, resources ResourceDB) []RoadmapItem {
	if len(missing) == 0 {
		return nil
	}

	logger := slog.With("component", "roadmap")

	raw, err := c.Complete(ctx, roadmapPrompt(missing, resources))
	if err == nil {
		items, perr := parseRoadmap(raw)
		if perr == nil {
			return items
		}
		logger.Warn("roadmap reply unusable, building fallback roadmap", "error", perr)
	} else {
		logger.Warn("generative call failed, building fallback roadmap", "error", err)
	}

	return fallbackRoadmap(missing, resources)
}

func parseRoadmap(raw string) ([]RoadmapItem, error) {
	var entries []map[string]any
	if err := json.Unmarshal([]byte(CleanJson(raw)), &entries); err != nil {
		return nil, &ParseError{Err: err}
	}

	items := make([]RoadmapItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, normalizeRoadmapEntry(entry))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Day < items[j].Day })
	return items, nil
}

// normalizeRoadmapEntry is the single adapter for the shape drift the
// generative service produces: "Day" vs "day", missing topic, missing
// resources. Each absent field gets a defined default; hours is fixed.
func normalizeRoadmapEntry(entry map[string]any) RoadmapItem {
	item := RoadmapItem{
		Tasks:     []string{},
		Resources: []Resource{},
		Hours:     roadmapHours,
	}

	day, ok := entry["day"]
	if !ok {
		day, ok = entry["Day"]
	}
	if ok {
		switch v := day.(type) {
		case float64:
			item.Day = int(v)
		case json.Number:
			if n, err := v.Int64(); err == nil {
				item.Day = int(n)
			}
		}
	}

	if skill, ok := entry["skill"].(string); ok {
		item.Skill = skill
	} else if topic, ok := entry["topic"].(string); ok {
		item.Skill = topic
	}

	if tasks, ok := entry["tasks"].([]any); ok {
		for _, t := range tasks {
			if s, ok := t.(string); ok {
				item.Tasks = append(item.Tasks, s)
			}
		}
	}

	if raw, err := json.Marshal(entry["resources"]); err == nil {
		var rs []Resource
		if json.Unmarshal(raw, &rs) == nil && rs != nil {
			item.Resources = rs
		}
	}

	return item
}

// fallbackRoadmap is fully offline and deterministic: three consecutive days
// per missing skill, one synthetic task each, resources by exact name from
// the resource database. The day counter runs globally, not per skill.
func fallbackRoadmap(missing []MissingSkill, resources ResourceDB) []RoadmapItem {
	items := make([]RoadmapItem, 0, len(missing)*fallbackDaysPerSkill)
	day := 1
	for _, m := range missing {
		rs := resources[m.Skill]
		if rs == nil {
			rs = []Resource{}
		}
		for i := 0; i < fallbackDaysPerSkill; i++ {
			items = append(items, RoadmapItem{
				Day:       day,
				Skill:     m.Skill,
				Tasks:     []string{fmt.Sprintf("Learn basics of %s", m.Skill)},
				Resources: rs,
				Hours:     roadmapHours,
			})
			day++
		}
	}
	return items
}
