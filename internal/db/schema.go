package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates all fittracker tables.
//
// Ownership is expressed with ON DELETE CASCADE (user -> workouts -> workout_exercises,
// template -> template exercises). exercise_id columns carry no foreign key: an exercise
// can be deleted while workouts and templates keep referencing it.
const Schema = `
CREATE TABLE IF NOT EXISTS users
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR(80)  NOT NULL,
    email         VARCHAR(120) NOT NULL,
    password_hash VARCHAR(128) NOT NULL,
    first_name    VARCHAR(50)  NOT NULL,
    last_name     VARCHAR(50)  NOT NULL,
    age           INTEGER,
    weight        DOUBLE PRECISION,
    height        DOUBLE PRECISION,
    fitness_goal  VARCHAR(100),
    created_at    TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
    CONSTRAINT users_username_key UNIQUE (username),
    CONSTRAINT users_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS exercises
(
    id               SERIAL PRIMARY KEY,
    name             VARCHAR(100) NOT NULL,
    description      TEXT,
    category         VARCHAR(50)  NOT NULL,
    muscle_groups    VARCHAR(200) NOT NULL DEFAULT '',
    equipment        VARCHAR(100),
    difficulty_level VARCHAR(20),
    instructions     TEXT,
    created_at       TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workouts
(
    id               SERIAL PRIMARY KEY,
    user_id          INTEGER      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    name             VARCHAR(100) NOT NULL,
    description      TEXT,
    date             DATE         NOT NULL DEFAULT CURRENT_DATE,
    duration_minutes INTEGER,
    calories_burned  INTEGER,
    notes            TEXT,
    created_at       TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workouts_user_id ON workouts (user_id);
CREATE INDEX IF NOT EXISTS ix_workouts_date ON workouts (date DESC);

CREATE TABLE IF NOT EXISTS workout_exercises
(
    id               SERIAL PRIMARY KEY,
    workout_id       INTEGER NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
    exercise_id      INTEGER NOT NULL,
    sets             INTEGER,
    reps             INTEGER,
    weight           DOUBLE PRECISION,
    duration_seconds INTEGER,
    distance         DOUBLE PRECISION,
    calories_burned  INTEGER,
    notes            TEXT,
    order_in_workout INTEGER NOT NULL DEFAULT 1 CHECK (order_in_workout > 0)
);
CREATE INDEX IF NOT EXISTS ix_workout_exercises_workout_id ON workout_exercises (workout_id);

CREATE TABLE IF NOT EXISTS workout_templates
(
    id                         SERIAL PRIMARY KEY,
    name                       VARCHAR(100) NOT NULL,
    description                TEXT,
    category                   VARCHAR(50)  NOT NULL,
    difficulty_level           VARCHAR(20)  NOT NULL,
    estimated_duration_minutes INTEGER      NOT NULL,
    estimated_calories         INTEGER,
    image_url                  VARCHAR(500),
    equipment_needed           VARCHAR(200) NOT NULL DEFAULT '',
    target_muscle_groups       VARCHAR(200) NOT NULL DEFAULT '',
    created_at                 TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_template_exercises
(
    id                SERIAL PRIMARY KEY,
    template_id       INTEGER NOT NULL REFERENCES workout_templates (id) ON DELETE CASCADE,
    exercise_id       INTEGER NOT NULL,
    order_in_template INTEGER NOT NULL DEFAULT 1 CHECK (order_in_template > 0),
    sets              INTEGER,
    reps              INTEGER,
    duration_seconds  INTEGER,
    rest_seconds      INTEGER NOT NULL DEFAULT 60,
    notes             VARCHAR(200)
);
CREATE INDEX IF NOT EXISTS ix_workout_template_exercises_template_id ON workout_template_exercises (template_id);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
