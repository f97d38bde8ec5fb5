// Package tasks generates starter tasks for a newly formed team and
// greedily assigns them to members by per-task fit.
package tasks

import (
	"math"
	"sort"
	"strings"

	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

// Trait buckets mapped onto legacy personality vector indices.
type Trait string

const (
	TraitLeader     Trait = "leader"
	TraitDetail     Trait = "detail"
	TraitCreative   Trait = "creative"
	TraitAnalytical Trait = "analytical"
	TraitAny        Trait = "any"
)

var traitIndices = map[Trait][]int{
	TraitLeader:     {0, 4, 8},
	TraitDetail:     {1, 5, 9},
	TraitCreative:   {2, 6, 10},
	TraitAnalytical: {3, 7, 11},
	TraitAny:        {},
}

// Template is a generated task before assignment.
type Template struct {
	Title           string
	Description     string
	PreferredSkills []string
	PreferredTrait  Trait
}

// Assignment is one generated task with its chosen assignee (nil when no
// member could be scored).
type Assignment struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	Title       string
	Description string
	AssignedTo  *uuid.UUID
	Completed   bool
}

// loadPenalty lowers a member's effective score per task already held,
// spreading work across the team.
const loadPenalty = 15

// TemplatesFor produces the starter task set for a project, proportional
// to team size.
func TemplatesFor(requiredSkills []string, teamSize int) []Template {
	first := requiredSkills
	if len(first) > 1 {
		first = first[:1]
	}

	all := []Template{
		{
			Title:           "Project Setup & Architecture",
			Description:     "Set up the project structure, configure build tools, and establish coding standards.",
			PreferredSkills: first,
			PreferredTrait:  TraitLeader,
		},
		{
			Title:           "Core Feature Implementation",
			Description:     "Implement the main functionality of the project.",
			PreferredSkills: requiredSkills,
			PreferredTrait:  TraitAnalytical,
		},
		{
			Title:           "UI/UX Implementation",
			Description:     "Build user interface components and ensure good user experience.",
			PreferredSkills: []string{"React", "CSS", "Figma"},
			PreferredTrait:  TraitCreative,
		},
		{
			Title:           "Testing & Quality Assurance",
			Description:     "Write tests and ensure code quality across the project.",
			PreferredSkills: requiredSkills,
			PreferredTrait:  TraitDetail,
		},
		{
			Title:           "Documentation",
			Description:     "Create technical documentation and user guides.",
			PreferredTrait:  TraitDetail,
		},
		{
			Title:           "Integration & Deployment",
			Description:     "Integrate all components and prepare for deployment.",
			PreferredSkills: []string{"Node.js", "DevOps", "Docker"},
			PreferredTrait:  TraitAnalytical,
		},
	}

	n := teamSize * 2
	if n < 3 {
		n = 3
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// ScoreMemberForTask rates one member's fit for one task: base 50, plus
// proficiency-weighted skill matches, trait-bucket adjustments from the
// legacy personality vector, and an availability bonus. Clamped 0-100.
func ScoreMemberForTask(profile compat.FreelancerProfile, tpl Template) int {
	score := 50.0

	byName := make(map[string]int, len(profile.Skills))
	for _, s := range profile.Skills {
		byName[strings.ToLower(s.Name)] = s.Proficiency
	}
	for _, req := range tpl.PreferredSkills {
		if prof, ok := byName[strings.ToLower(req)]; ok {
			score += float64(prof) * 5
		}
	}

	for _, idx := range traitIndices[tpl.PreferredTrait] {
		if idx >= len(profile.LegacyPersonality) {
			continue
		}
		switch v := profile.LegacyPersonality[idx]; {
		case v >= 4:
			score += 5
		case v <= 2 && v > 0:
			score -= 3
		}
	}

	if profile.Availability.HoursPerWeek >= 30 {
		score += 10
	}

	return int(math.Max(0, math.Min(100, math.Round(score))))
}

// Distribute generates the starter tasks for a group and assigns each to
// the best-scoring member, penalizing members already holding tasks.
// Members without a resolvable profile are never assigned.
func Distribute(groupID uuid.UUID, memberIDs []uuid.UUID, requiredSkills []string, profiles map[uuid.UUID]compat.FreelancerProfile) []Assignment {
	templates := TemplatesFor(requiredSkills, len(memberIDs))

	counts := make(map[uuid.UUID]int, len(memberIDs))
	out := make([]Assignment, 0, len(templates))

	for _, tpl := range templates {
		type scored struct {
			id    uuid.UUID
			score int
		}
		candidates := make([]scored, 0, len(memberIDs))
		for _, id := range memberIDs {
			profile, ok := profiles[id]
			if !ok {
				continue
			}
			candidates = append(candidates, scored{
				id:    id,
				score: ScoreMemberForTask(profile, tpl) - counts[id]*loadPenalty,
			})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})

		var assignee *uuid.UUID
		if len(candidates) > 0 {
			id := candidates[0].id
			assignee = &id
			counts[id]++
		}

		out = append(out, Assignment{
			ID:          uuid.New(),
			GroupID:     groupID,
			Title:       tpl.Title,
			Description: tpl.Description,
			AssignedTo:  assignee,
		})
	}

	return out
}
