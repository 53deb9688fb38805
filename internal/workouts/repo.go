package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const workoutColumns = `id, user_id, name, description, date, duration_minutes, calories_burned, notes, created_at`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create persists the workout and all its exercises in a single transaction.
// Nothing is written if any exercise references an unknown exercise or the user does not exist.
func (r *Repo) Create(ctx context.Context, workout *Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.create(ctx, workout, true)
}

// CreateFromTemplate persists a workout expanded from a template. Exercise ids are copied as-is,
// so exercises deleted since the template was written still get a child row (with a null name).
func (r *Repo) CreateFromTemplate(ctx context.Context, workout *Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createFromTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.create(ctx, workout, false)
}

func (r *Repo) create(ctx context.Context, workout *Workout, checkExercises bool) (_ *Workout, err error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int("user_id", workout.UserID))
	span.SetAttributes(attribute.Int("exercises", len(workout.Exercises)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "begin tx")
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("create workout, rollback: %s", rollbackErr)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = apperr.Internal(commitErr, "commit create workout")
		}
	}()

	var workoutID int
	err = tx.QueryRow(
		ctx,
		`INSERT INTO workouts
				(user_id, name, description, date, duration_minutes, calories_burned, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.UserID, workout.Name, workout.Description, workout.Date.Time,
		workout.DurationMinutes, workout.CaloriesBurned, workout.Notes,
	).Scan(&workoutID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, apperr.NotFound("user %d not found", workout.UserID)
		}
		return nil, apperr.Internal(err, "insert workout")
	}
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	for _, we := range workout.Exercises {
		if err = insertWorkoutExercise(ctx, tx, workoutID, we, checkExercises); err != nil {
			return nil, err
		}
	}

	created, err := getWorkout(ctx, tx, workoutID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func insertWorkoutExercise(ctx context.Context, tx pgx.Tx, workoutID int, we WorkoutExercise, checkExercise bool) error {
	if we.OrderInWorkout < 1 {
		return apperr.Validation("order_in_workout must be positive, got %d", we.OrderInWorkout)
	}

	if checkExercise {
		var exists bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM exercises WHERE id = $1)`,
			we.ExerciseID,
		).Scan(&exists); err != nil {
			return apperr.Internal(err, "check exercise %d", we.ExerciseID)
		}
		if !exists {
			return apperr.Validation("exercise %d does not exist", we.ExerciseID)
		}
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO workout_exercises
				(workout_id, exercise_id, sets, reps, weight, duration_seconds, distance, calories_burned, notes, order_in_workout)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		workoutID, we.ExerciseID, we.Sets, we.Reps, we.Weight,
		we.DurationSeconds, we.Distance, we.CaloriesBurned, we.Notes, we.OrderInWorkout,
	); err != nil {
		return apperr.Internal(err, "insert workout exercise")
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return getWorkout(ctx, r.db, id)
}

// List returns workouts, newest date first. A nil userID lists the workouts of all users.
func (r *Repo) List(ctx context.Context, userID *int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if userID != nil {
		span.SetAttributes(attribute.Int("user_id", *userID))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+workoutColumns+`
			FROM workouts
			WHERE ($1::integer IS NULL OR user_id = $1)
			ORDER BY date DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, apperr.Internal(err, "list workouts")
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, apperr.Internal(err, "scan workout")
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "list workouts rows")
	}

	ids := make([]int, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	exercisesByWorkout, err := loadWorkoutExercises(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = exercisesByWorkout[workouts[i].ID]
		workouts[i].SortExercises()
	}

	span.SetAttributes(attribute.Int("count", len(workouts)))
	return workouts, nil
}

func (r *Repo) Update(ctx context.Context, id int, params UpdateParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts SET
				name = COALESCE($1, name),
				description = COALESCE($2, description),
				date = COALESCE($3::date, date),
				duration_minutes = COALESCE($4, duration_minutes),
				calories_burned = COALESCE($5, calories_burned),
				notes = COALESCE($6, notes)
			WHERE id = $7`,
		params.Name, params.Description, params.Date,
		params.DurationMinutes, params.CaloriesBurned, params.Notes,
		id,
	)
	if err != nil {
		return nil, apperr.Internal(err, "update workout %d", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("workout %d not found", id)
	}

	return getWorkout(ctx, r.db, id)
}

// Delete removes the workout, its exercises are removed by the cascade.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal(err, "delete workout %d", id)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("workout %d not found", id)
	}
	return nil
}

func getWorkout(ctx context.Context, q querier, id int) (*Workout, error) {
	w, err := scanWorkout(q.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("workout %d not found", id)
		}
		return nil, apperr.Internal(err, "get workout %d", id)
	}

	exercisesByWorkout, err := loadWorkoutExercises(ctx, q, []int{id})
	if err != nil {
		return nil, err
	}
	w.Exercises = exercisesByWorkout[id]
	w.SortExercises()
	return w, nil
}

func loadWorkoutExercises(ctx context.Context, q querier, workoutIDs []int) (map[int][]WorkoutExercise, error) {
	byWorkout := make(map[int][]WorkoutExercise, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return byWorkout, nil
	}

	rows, err := q.Query(
		ctx,
		`
			SELECT
				we.id, we.workout_id, we.exercise_id, e.name,
				we.sets, we.reps, we.weight, we.duration_seconds, we.distance,
				we.calories_burned, we.notes, we.order_in_workout
			FROM workout_exercises we
			LEFT JOIN exercises e ON e.id = we.exercise_id
			WHERE we.workout_id = ANY($1)
			ORDER BY we.workout_id, we.order_in_workout, we.id;`,
		workoutIDs,
	)
	if err != nil {
		return nil, apperr.Internal(err, "query workout exercises")
	}
	defer rows.Close()

	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(
			&we.ID, &we.WorkoutID, &we.ExerciseID, &we.ExerciseName,
			&we.Sets, &we.Reps, &we.Weight, &we.DurationSeconds, &we.Distance,
			&we.CaloriesBurned, &we.Notes, &we.OrderInWorkout,
		); err != nil {
			return nil, apperr.Internal(err, "scan workout exercise")
		}
		byWorkout[we.WorkoutID] = append(byWorkout[we.WorkoutID], we)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "workout exercises rows")
	}
	return byWorkout, nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	if err := row.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Description, &w.Date.Time,
		&w.DurationMinutes, &w.CaloriesBurned, &w.Notes, &w.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	return &w, nil
}
