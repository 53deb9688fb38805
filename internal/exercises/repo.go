package exercises

import (
	"context"
	"errors"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `id, name, description, category, muscle_groups, equipment, difficulty_level, instructions, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	muscleGroups, err := pkg.JoinList(exercise.MuscleGroups)
	if err != nil {
		return nil, apperr.Validation("muscle_groups: %s", err)
	}

	added, err := scanExercise(r.db.QueryRow(
		ctx,
		`INSERT INTO exercises
				(name, description, category, muscle_groups, equipment, difficulty_level, instructions)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+exerciseColumns,
		exercise.Name, exercise.Description, exercise.Category, muscleGroups,
		exercise.Equipment, exercise.DifficultyLevel, exercise.Instructions,
	))
	if err != nil {
		return nil, apperr.Internal(err, "insert exercise")
	}

	span.SetAttributes(attribute.Int("exercise.id", added.ID))
	return added, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	exercise, err := scanExercise(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("exercise %d not found", id)
		}
		return nil, apperr.Internal(err, "get exercise %d", id)
	}
	return exercise, nil
}

// List returns the exercises matching all the given (optional) filters, ordered by id.
// MuscleGroup matches any exercise whose muscle groups contain the value.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", params.Category))
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))
	span.SetAttributes(attribute.String("difficulty", params.Difficulty))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+exerciseColumns+`
			FROM exercises
			WHERE ($1::text = '' OR category = $1)
				AND ($2::text = '' OR strpos(muscle_groups, $2) > 0)
				AND ($3::text = '' OR difficulty_level = $3)
			ORDER BY id;`,
		params.Category, params.MuscleGroup, params.Difficulty,
	)
	if err != nil {
		return nil, apperr.Internal(err, "list exercises")
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, apperr.Internal(err, "scan exercise")
		}
		exercises = append(exercises, *exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "list exercises rows")
	}

	span.SetAttributes(attribute.Int("count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Update(ctx context.Context, id int, req UpdateRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var muscleGroups *string
	if req.MuscleGroups != nil {
		joined, err := pkg.JoinList(req.MuscleGroups)
		if err != nil {
			return nil, apperr.Validation("muscle_groups: %s", err)
		}
		muscleGroups = &joined
	}

	updated, err := scanExercise(r.db.QueryRow(
		ctx,
		`UPDATE exercises SET
				name = COALESCE($1, name),
				description = COALESCE($2, description),
				category = COALESCE($3, category),
				muscle_groups = COALESCE($4, muscle_groups),
				equipment = COALESCE($5, equipment),
				difficulty_level = COALESCE($6, difficulty_level),
				instructions = COALESCE($7, instructions)
			WHERE id = $8
			RETURNING `+exerciseColumns,
		req.Name, req.Description, req.Category, muscleGroups,
		req.Equipment, req.DifficultyLevel, req.Instructions,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("exercise %d not found", id)
		}
		return nil, apperr.Internal(err, "update exercise %d", id)
	}
	return updated, nil
}

// Delete removes the exercise. Workout and template rows referencing it are kept.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal(err, "delete exercise %d", id)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("exercise %d not found", id)
	}
	return nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var (
		e            Exercise
		muscleGroups string
	)
	if err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Category, &muscleGroups,
		&e.Equipment, &e.DifficultyLevel, &e.Instructions, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.MuscleGroups = pkg.SplitList(muscleGroups)
	return &e, nil
}
