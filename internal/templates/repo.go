package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const templateColumns = `id, name, description, category, difficulty_level, estimated_duration_minutes,
	estimated_calories, image_url, equipment_needed, target_muscle_groups, created_at`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the templates matching the given (optional) filters, ordered by id.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", params.Category))
	span.SetAttributes(attribute.String("difficulty", params.Difficulty))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+templateColumns+`
			FROM workout_templates
			WHERE ($1::text = '' OR category = $1)
				AND ($2::text = '' OR difficulty_level = $2)
			ORDER BY id;`,
		params.Category, params.Difficulty,
	)
	if err != nil {
		return nil, apperr.Internal(err, "list templates")
	}
	defer rows.Close()

	templates := make([]Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, apperr.Internal(err, "scan template")
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "list templates rows")
	}

	ids := make([]int, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID)
	}
	exercisesByTemplate, err := loadTemplateExercises(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Exercises = exercisesByTemplate[templates[i].ID]
		templates[i].SortExercises()
	}

	span.SetAttributes(attribute.Int("count", len(templates)))
	return templates, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return getTemplate(ctx, r.db, id)
}

// Create persists the template with its exercises in one transaction.
func (r *Repo) Create(ctx context.Context, t *Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", t.Name))

	equipment, err := pkg.JoinList(t.EquipmentNeeded)
	if err != nil {
		return nil, apperr.Validation("equipment_needed: %s", err)
	}
	muscleGroups, err := pkg.JoinList(t.TargetMuscleGroups)
	if err != nil {
		return nil, apperr.Validation("target_muscle_groups: %s", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "begin tx")
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("create template, rollback: %s", rollbackErr)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = apperr.Internal(commitErr, "commit create template")
		}
	}()

	var templateID int
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO workout_templates
				(name, description, category, difficulty_level, estimated_duration_minutes,
				 estimated_calories, image_url, equipment_needed, target_muscle_groups)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		t.Name, t.Description, t.Category, t.DifficultyLevel, t.EstimatedDurationMinutes,
		t.EstimatedCalories, t.ImageURL, equipment, muscleGroups,
	).Scan(&templateID); err != nil {
		return nil, apperr.Internal(err, "insert template")
	}

	for _, te := range t.Exercises {
		var exists bool
		if err = tx.QueryRow(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM exercises WHERE id = $1)`,
			te.ExerciseID,
		).Scan(&exists); err != nil {
			return nil, apperr.Internal(err, "check exercise %d", te.ExerciseID)
		}
		if !exists {
			err = apperr.Validation("exercise %d does not exist", te.ExerciseID)
			return nil, err
		}

		if _, err = tx.Exec(
			ctx,
			`INSERT INTO workout_template_exercises
					(template_id, exercise_id, order_in_template, sets, reps, duration_seconds, rest_seconds, notes)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			templateID, te.ExerciseID, te.OrderInTemplate, te.Sets, te.Reps,
			te.DurationSeconds, te.RestSeconds, te.Notes,
		); err != nil {
			if pkg.IsCheckViolationError(err) {
				return nil, apperr.Validation("invalid template exercise %d", te.ExerciseID)
			}
			return nil, apperr.Internal(err, "insert template exercise")
		}
	}

	created, err := getTemplate(ctx, tx, templateID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("template.id", created.ID))
	return created, nil
}

// Delete removes the template and its exercises. Workouts started from it are kept.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_templates WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal(err, "delete template %d", id)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("template %d not found", id)
	}
	return nil
}

func getTemplate(ctx context.Context, q querier, id int) (*Template, error) {
	t, err := scanTemplate(q.QueryRow(
		ctx,
		`SELECT `+templateColumns+` FROM workout_templates WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("template %d not found", id)
		}
		return nil, apperr.Internal(err, "get template %d", id)
	}

	exercisesByTemplate, err := loadTemplateExercises(ctx, q, []int{id})
	if err != nil {
		return nil, err
	}
	t.Exercises = exercisesByTemplate[id]
	t.SortExercises()
	return t, nil
}

func loadTemplateExercises(ctx context.Context, q querier, templateIDs []int) (map[int][]TemplateExercise, error) {
	byTemplate := make(map[int][]TemplateExercise, len(templateIDs))
	if len(templateIDs) == 0 {
		return byTemplate, nil
	}

	rows, err := q.Query(
		ctx,
		`
			SELECT
				te.id, te.template_id, te.exercise_id, e.name, e.description, e.instructions,
				te.order_in_template, te.sets, te.reps, te.duration_seconds, te.rest_seconds, te.notes
			FROM workout_template_exercises te
			LEFT JOIN exercises e ON e.id = te.exercise_id
			WHERE te.template_id = ANY($1)
			ORDER BY te.template_id, te.order_in_template, te.id;`,
		templateIDs,
	)
	if err != nil {
		return nil, apperr.Internal(err, "query template exercises")
	}
	defer rows.Close()

	for rows.Next() {
		var te TemplateExercise
		if err := rows.Scan(
			&te.ID, &te.TemplateID, &te.ExerciseID, &te.ExerciseName, &te.ExerciseDescription, &te.ExerciseInstructions,
			&te.OrderInTemplate, &te.Sets, &te.Reps, &te.DurationSeconds, &te.RestSeconds, &te.Notes,
		); err != nil {
			return nil, apperr.Internal(err, "scan template exercise")
		}
		byTemplate[te.TemplateID] = append(byTemplate[te.TemplateID], te)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "template exercises rows")
	}
	return byTemplate, nil
}

func scanTemplate(row pgx.Row) (*Template, error) {
	var (
		t            Template
		equipment    string
		muscleGroups string
	)
	if err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Category, &t.DifficultyLevel, &t.EstimatedDurationMinutes,
		&t.EstimatedCalories, &t.ImageURL, &equipment, &muscleGroups, &t.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan template: %w", err)
	}
	t.EquipmentNeeded = pkg.SplitList(equipment)
	t.TargetMuscleGroups = pkg.SplitList(muscleGroups)
	return &t, nil
}
