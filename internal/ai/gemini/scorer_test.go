package gemini

import (
	"context"
	"errors"
	"log"
	"testing"

	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func testProfile(name string) compat.FreelancerProfile {
	return compat.FreelancerProfile{
		UserID:       uuid.New(),
		Skills:       []compat.SkillEntry{{Name: name, Proficiency: 4}},
		Availability: compat.Availability{HoursPerWeek: 30, Timezone: "UTC"},
	}
}

func TestScorer_ScorePairwise_ParsesFencedJSON(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"score\": 87.4}\n```"}
	s := NewScorer(gen, log.Default())

	got, err := s.ScorePairwise(context.Background(), testProfile("Go"), testProfile("React"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 87 {
		t.Fatalf("expected 87, got %d", got)
	}
}

func TestScorer_ScorePairwise_ClampsOutOfRange(t *testing.T) {
	gen := &fakeGenerator{response: `{"score": 140}`}
	s := NewScorer(gen, log.Default())

	got, err := s.ScorePairwise(context.Background(), testProfile("Go"), testProfile("React"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestScorer_GeneratorErrorPropagates(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	s := NewScorer(gen, log.Default())

	if _, err := s.ScoreProject(context.Background(), testProfile("Go"), compat.Project{ID: uuid.New()}); err == nil {
		t.Fatalf("expected generator error to propagate")
	}
}

func TestScorer_RankCandidates(t *testing.T) {
	a := testProfile("Go")
	b := testProfile("React")
	profiles := map[uuid.UUID]compat.FreelancerProfile{a.UserID: a, b.UserID: b}

	gen := &fakeGenerator{response: `{"rankings": [{"candidateIndex": 1, "score": 90}, {"candidateIndex": 0, "score": 70}, {"candidateIndex": 9, "score": 50}]}`}
	s := NewScorer(gen, log.Default())

	got, err := s.RankCandidates(context.Background(), compat.Project{ID: uuid.New()}, []uuid.UUID{a.UserID, b.UserID}, nil, profiles)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("out-of-range index should be dropped, got %d results", len(got))
	}
	if got[0].FreelancerID != b.UserID || got[0].TotalScore != 90 {
		t.Fatalf("expected candidate b first with 90, got %+v", got[0])
	}
}

func TestScorer_RankCandidates_GarbageResponse(t *testing.T) {
	a := testProfile("Go")
	profiles := map[uuid.UUID]compat.FreelancerProfile{a.UserID: a}

	gen := &fakeGenerator{response: "sorry, I cannot help with that"}
	s := NewScorer(gen, log.Default())

	if _, err := s.RankCandidates(context.Background(), compat.Project{ID: uuid.New()}, []uuid.UUID{a.UserID}, nil, profiles); err == nil {
		t.Fatalf("expected parse error for non-JSON response")
	}
}

func TestScorer_SuggestTeams(t *testing.T) {
	a := testProfile("Go")
	b := testProfile("React")
	c := testProfile("SQL")
	profiles := map[uuid.UUID]compat.FreelancerProfile{a.UserID: a, b.UserID: b, c.UserID: c}
	ids := []uuid.UUID{a.UserID, b.UserID, c.UserID}

	gen := &fakeGenerator{response: `{"teams": [{"memberIndices": [0, 2], "avgScore": 84}, {"memberIndices": [0, 1], "avgScore": 77}]}`}
	s := NewScorer(gen, log.Default())

	got, err := s.SuggestTeams(context.Background(), compat.Project{ID: uuid.New()}, ids, 2, profiles)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].AvgScore != 84 || got[0].Members[0] != a.UserID || got[0].Members[1] != c.UserID {
		t.Fatalf("unexpected first suggestion: %+v", got[0])
	}
}

func TestScorer_SuggestTeams_InsufficientPoolSkipsAI(t *testing.T) {
	a := testProfile("Go")
	profiles := map[uuid.UUID]compat.FreelancerProfile{a.UserID: a}

	gen := &fakeGenerator{response: `{"teams": []}`}
	s := NewScorer(gen, log.Default())

	got, err := s.SuggestTeams(context.Background(), compat.Project{ID: uuid.New()}, []uuid.UUID{a.UserID}, 3, profiles)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatalf("degenerate pool must not call the generator")
	}
	if len(got) != 1 || got[0].AvgScore != 50 {
		t.Fatalf("expected the engine's degenerate suggestion, got %+v", got)
	}
}
