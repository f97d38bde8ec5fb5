package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sort"
	"time"

	"crewmatch/internal/ai"
	"crewmatch/internal/domain/compat"
	"crewmatch/internal/domain/group"
	"crewmatch/internal/domain/project"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrNoCandidates = errors.New("no candidates")

// MatchCache is the slice of the Redis client the matching path needs.
// A nil cache disables caching entirely.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateProject(ctx context.Context, projectID string) error
}

const matchCacheTTL = 5 * time.Minute

type PairwiseResult struct {
	AID   uuid.UUID
	BID   uuid.UUID
	Score int
}

type MatchingUsecase interface {
	Pairwise(ctx context.Context, aID, bID uuid.UUID) (PairwiseResult, error)
	ProjectFit(ctx context.Context, freelancerID, projectID uuid.UUID) (int, error)
	RankApplicants(ctx context.Context, ownerID, projectID uuid.UUID) ([]compat.CandidateScore, error)
	SuggestTeams(ctx context.Context, ownerID, projectID uuid.UUID) ([]compat.TeamSuggestion, error)
}

// Matching scores applicants with the configured strategy. When the
// primary strategy fails (AI quota, network, unparseable response) the
// algorithmic engine answers instead; a ranking request never fails
// because the AI did.
type Matching struct {
	profiles     repository.ProfileRepository
	projects     repository.ProjectRepository
	applications repository.ApplicationRepository
	groups       repository.GroupRepository

	strategy ai.Strategy
	fallback ai.Strategy
	cache    MatchCache
	logger   *log.Logger
}

func NewMatchingUsecase(
	profiles repository.ProfileRepository,
	projects repository.ProjectRepository,
	applications repository.ApplicationRepository,
	groups repository.GroupRepository,
	strategy ai.Strategy,
	cache MatchCache,
	logger *log.Logger,
) *Matching {
	if strategy == nil {
		strategy = ai.NewAlgorithmic()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{
		profiles:     profiles,
		projects:     projects,
		applications: applications,
		groups:       groups,
		strategy:     strategy,
		fallback:     ai.NewAlgorithmic(),
		cache:        cache,
		logger:       logger,
	}
}

func (u *Matching) Pairwise(ctx context.Context, aID, bID uuid.UUID) (PairwiseResult, error) {
	if aID == uuid.Nil || bID == uuid.Nil {
		return PairwiseResult{}, ErrProfileNotFound
	}

	profiles, err := u.profiles.GetByUserIDs(ctx, []uuid.UUID{aID, bID})
	if err != nil {
		return PairwiseResult{}, ErrInternal
	}
	a, okA := profiles[aID]
	b, okB := profiles[bID]
	if !okA || !okB {
		return PairwiseResult{}, ErrProfileNotFound
	}

	score, err := u.strategy.ScorePairwise(ctx, a, b)
	if err != nil {
		u.logger.Printf("Matching fallback | op=pairwise error=%v", err)
		score, err = u.fallback.ScorePairwise(ctx, a, b)
		if err != nil {
			return PairwiseResult{}, ErrInternal
		}
	}
	return PairwiseResult{AID: aID, BID: bID, Score: score}, nil
}

func (u *Matching) ProjectFit(ctx context.Context, freelancerID, projectID uuid.UUID) (int, error) {
	p, err := u.profiles.GetByUserID(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, ErrProfileNotFound
		}
		return 0, ErrInternal
	}

	proj, err := u.loadProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	score, err := u.strategy.ScoreProject(ctx, p, proj)
	if err != nil {
		u.logger.Printf("Matching fallback | op=project error=%v", err)
		score, err = u.fallback.ScoreProject(ctx, p, proj)
		if err != nil {
			return 0, ErrInternal
		}
	}
	return score, nil
}

func (u *Matching) RankApplicants(ctx context.Context, ownerID, projectID uuid.UUID) ([]compat.CandidateScore, error) {
	proj, candidates, members, profiles, err := u.loadPool(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []compat.CandidateScore{}, nil
	}

	key := rankCacheKey(projectID, candidates, members)
	if u.cache != nil {
		var cached []compat.CandidateScore
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := u.strategy.RankCandidates(ctx, proj, candidates, members, profiles)
	if err != nil {
		u.logger.Printf("Matching fallback | op=rank project=%s error=%v", projectID, err)
		out, err = u.fallback.RankCandidates(ctx, proj, candidates, members, profiles)
		if err != nil {
			return nil, ErrInternal
		}
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, matchCacheTTL)
	}
	return out, nil
}

func (u *Matching) SuggestTeams(ctx context.Context, ownerID, projectID uuid.UUID) ([]compat.TeamSuggestion, error) {
	proj, candidates, _, profiles, err := u.loadPool(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	key := teamsCacheKey(projectID, candidates, proj.TeamSize)
	if u.cache != nil {
		var cached []compat.TeamSuggestion
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := u.strategy.SuggestTeams(ctx, proj, candidates, proj.TeamSize, profiles)
	if err != nil {
		u.logger.Printf("Matching fallback | op=teams project=%s error=%v", projectID, err)
		out, err = u.fallback.SuggestTeams(ctx, proj, candidates, proj.TeamSize, profiles)
		if err != nil {
			return nil, ErrInternal
		}
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, matchCacheTTL)
	}
	return out, nil
}

// loadPool resolves the project, its pending applicants, any existing
// group members and every profile the scoring needs.
func (u *Matching) loadPool(ctx context.Context, ownerID, projectID uuid.UUID) (compat.Project, []uuid.UUID, []uuid.UUID, map[uuid.UUID]compat.FreelancerProfile, error) {
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return compat.Project{}, nil, nil, nil, ErrProjectNotFound
		}
		return compat.Project{}, nil, nil, nil, ErrInternal
	}
	if p.OwnerID != ownerID {
		return compat.Project{}, nil, nil, nil, ErrNotProjectOwner
	}

	candidates, err := u.applications.ListPendingFreelancerIDs(ctx, projectID)
	if err != nil {
		return compat.Project{}, nil, nil, nil, ErrInternal
	}

	var members []uuid.UUID
	g, err := u.groups.GetByProjectID(ctx, projectID)
	if err == nil {
		members = g.MemberIDs
	} else if !errors.Is(err, group.ErrNotFound) {
		return compat.Project{}, nil, nil, nil, ErrInternal
	}

	all := make([]uuid.UUID, 0, len(candidates)+len(members))
	all = append(all, candidates...)
	all = append(all, members...)
	profiles, err := u.profiles.GetByUserIDs(ctx, all)
	if err != nil {
		return compat.Project{}, nil, nil, nil, ErrInternal
	}

	proj := compat.Project{ID: p.ID, RequiredSkills: p.RequiredSkills, TeamSize: p.TeamSize}
	return proj, candidates, members, profiles, nil
}

func (u *Matching) loadProject(ctx context.Context, projectID uuid.UUID) (compat.Project, error) {
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return compat.Project{}, ErrProjectNotFound
		}
		return compat.Project{}, ErrInternal
	}
	return compat.Project{ID: p.ID, RequiredSkills: p.RequiredSkills, TeamSize: p.TeamSize}, nil
}

func rankCacheKey(projectID uuid.UUID, candidates, members []uuid.UUID) string {
	return fmt.Sprintf("match:rank:%s:%s", projectID, poolHash(candidates, members))
}

func teamsCacheKey(projectID uuid.UUID, candidates []uuid.UUID, teamSize int) string {
	return fmt.Sprintf("match:teams:%s:%s-%d", projectID, poolHash(candidates, nil), teamSize)
}

// poolHash fingerprints the candidate pool so a cache entry dies with it.
// Order-insensitive: the same set of applicants hashes the same.
func poolHash(candidates, members []uuid.UUID) string {
	ids := make([]string, 0, len(candidates)+len(members))
	for _, id := range candidates {
		ids = append(ids, "c"+id.String())
	}
	for _, id := range members {
		ids = append(ids, "m"+id.String())
	}
	sort.Strings(ids)

	h := fnv.New64a()
	for _, id := range ids {
		_, _ = h.Write([]byte(id))
	}
	return fmt.Sprintf("%x", h.Sum64())
}
