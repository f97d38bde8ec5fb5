package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Upsert(ctx context.Context, p compat.FreelancerProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (compat.FreelancerProfile, error)
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]compat.FreelancerProfile, error)
	SetOnboardingComplete(ctx context.Context, userID uuid.UUID) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// skillDoc and quizDoc are the JSONB shapes persisted for a profile.
type skillDoc struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p compat.FreelancerProfile) error {
	skillsJSON, err := json.Marshal(skillDocsFrom(p.Skills))
	if err != nil {
		return err
	}

	var quizJSON []byte
	if p.Quiz != nil {
		quizJSON, err = json.Marshal(p.Quiz)
		if err != nil {
			return err
		}
	}

	personality := make([]int32, 0, len(p.LegacyPersonality))
	for _, v := range p.LegacyPersonality {
		personality = append(personality, int32(v))
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO freelancer_profiles
			(user_id, skills, personality, quiz, hours_per_week, timezone, onboarding_complete, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			personality = EXCLUDED.personality,
			quiz = EXCLUDED.quiz,
			hours_per_week = EXCLUDED.hours_per_week,
			timezone = EXCLUDED.timezone,
			onboarding_complete = EXCLUDED.onboarding_complete,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, skillsJSON, personality, quizJSON,
		p.Availability.HoursPerWeek, p.Availability.Timezone,
		p.OnboardingComplete, time.Now().UTC(),
	)
	return err
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (compat.FreelancerProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, skills, personality, quiz, hours_per_week, timezone, onboarding_complete
		 FROM freelancer_profiles
		 WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]compat.FreelancerProfile, error) {
	out := make(map[uuid.UUID]compat.FreelancerProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, skills, personality, quiz, hours_per_week, timezone, onboarding_complete
		 FROM freelancer_profiles
		 WHERE user_id = ANY($1::uuid[])`,
		uuidStrings(userIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) SetOnboardingComplete(ctx context.Context, userID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE freelancer_profiles
		 SET onboarding_complete = TRUE, updated_at = now()
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func scanProfile(row database.Row) (compat.FreelancerProfile, error) {
	var (
		p           compat.FreelancerProfile
		skillsJSON  []byte
		personality []int32
		quizJSON    []byte
	)

	err := row.Scan(
		&p.UserID, &skillsJSON, &personality, &quizJSON,
		&p.Availability.HoursPerWeek, &p.Availability.Timezone,
		&p.OnboardingComplete,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compat.FreelancerProfile{}, ErrProfileNotFound
		}
		return compat.FreelancerProfile{}, err
	}

	if len(skillsJSON) > 0 {
		var docs []skillDoc
		if err := json.Unmarshal(skillsJSON, &docs); err != nil {
			return compat.FreelancerProfile{}, err
		}
		p.Skills = make([]compat.SkillEntry, 0, len(docs))
		for _, d := range docs {
			p.Skills = append(p.Skills, compat.SkillEntry{Name: d.Name, Proficiency: d.Proficiency})
		}
	}

	if len(personality) > 0 {
		p.LegacyPersonality = make([]int, 0, len(personality))
		for _, v := range personality {
			p.LegacyPersonality = append(p.LegacyPersonality, int(v))
		}
	}

	if len(quizJSON) > 0 {
		var q compat.QuizResult
		if err := json.Unmarshal(quizJSON, &q); err != nil {
			return compat.FreelancerProfile{}, err
		}
		p.Quiz = &q
	}

	return p, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func skillDocsFrom(skills []compat.SkillEntry) []skillDoc {
	docs := make([]skillDoc, 0, len(skills))
	for _, s := range skills {
		docs = append(docs, skillDoc{Name: s.Name, Proficiency: s.Proficiency})
	}
	return docs
}
