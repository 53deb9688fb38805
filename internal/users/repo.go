package users

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

const (
	userColumns = `id, username, email, password_hash, first_name, last_name, age, weight, height, fitness_goal, created_at`

	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ExistsByUsername(ctx context.Context, username string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.existsByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists); err != nil {
		return false, apperr.Internal(err, "check username")
	}
	return exists, nil
}

func (r *Repo) ExistsByEmail(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.existsByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists); err != nil {
		return false, apperr.Internal(err, "check email")
	}
	return exists, nil
}

// Create inserts the user. Losing a registration race against the same username or email
// surfaces as a Conflict from the unique constraints.
func (r *Repo) Create(ctx context.Context, user *User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created, err := scanUser(r.db.QueryRow(
		ctx,
		`INSERT INTO users
				(username, email, password_hash, first_name, last_name, age, weight, height, fitness_goal)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+userColumns,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Age, user.Weight, user.Height, user.FitnessGoal,
	))
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			switch pkg.ConstraintName(err) {
			case emailConstraint:
				return nil, apperr.Conflict("email already exists")
			default:
				return nil, apperr.Conflict("username already exists")
			}
		}
		return nil, apperr.Internal(err, "insert user")
	}

	span.SetAttributes(attribute.Int("user.id", created.ID))
	return created, nil
}

// GetByUsername returns the user including the password hash.
func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user %s not found", username)
		}
		return nil, apperr.Internal(err, "get user by username")
	}
	return user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	user, err := scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user %d not found", id)
		}
		return nil, apperr.Internal(err, "get user %d", id)
	}
	return user, nil
}

func (r *Repo) Update(ctx context.Context, id int, req UpdateRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	updated, err := scanUser(r.db.QueryRow(
		ctx,
		`UPDATE users SET
				first_name = COALESCE($1, first_name),
				last_name = COALESCE($2, last_name),
				age = COALESCE($3, age),
				weight = COALESCE($4, weight),
				height = COALESCE($5, height),
				fitness_goal = COALESCE($6, fitness_goal)
			WHERE id = $7
			RETURNING `+userColumns,
		req.FirstName, req.LastName, req.Age, req.Weight, req.Height, req.FitnessGoal,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user %d not found", id)
		}
		return nil, apperr.Internal(err, "update user %d", id)
	}
	return updated, nil
}

// Delete removes the user, the user's workouts go with it.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal(err, "delete user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user %d not found", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Age, &u.Weight, &u.Height, &u.FitnessGoal, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
