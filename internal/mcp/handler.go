package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/templates"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type exercisesLister interface {
	List(ctx context.Context, params exercises.ListParams) ([]exercises.Exercise, error)
}

type templatesReader interface {
	List(ctx context.Context, params templates.ListParams) ([]templates.Template, error)
	Get(ctx context.Context, id int) (*templates.Template, error)
}

type workoutsLister interface {
	List(ctx context.Context, userID *int) ([]workouts.Workout, error)
}

// Handler exposes the read side of the tracker as MCP tools. Results are the same JSON the HTTP API returns.
type Handler struct {
	exercises exercisesLister
	templates templatesReader
	workouts  workoutsLister
}

func NewHandler(exercisesRepo exercisesLister, templatesService templatesReader, workoutsService workoutsLister) *Handler {
	return &Handler{
		exercises: exercisesRepo,
		templates: templatesService,
		workouts:  workoutsService,
	}
}

type ListExercisesInput struct {
	Category    string `json:"category,omitempty" jsonschema:"Filter by category (e.g. strength, cardio, flexibility)"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by a muscle group the exercise works (e.g. chest, legs)"`
	Difficulty  string `json:"difficulty,omitempty" jsonschema:"Filter by difficulty level (beginner, intermediate, advanced)"`
}

func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.exercises.List(ctx, exercises.ListParams{
			Category:    in.Category,
			MuscleGroup: in.MuscleGroup,
			Difficulty:  in.Difficulty,
		})
		if err != nil {
			return errorResult("Error listing exercises: %s", err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type ListTemplatesInput struct {
	Category   string `json:"category,omitempty" jsonschema:"Filter by category (e.g. strength, hiit, yoga)"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"Filter by difficulty level (beginner, intermediate, advanced)"`
}

func (h *Handler) ListTemplatesTool() func(context.Context, *mcp.CallToolRequest, ListTemplatesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListTemplatesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.templates.List(ctx, templates.ListParams{
			Category:   in.Category,
			Difficulty: in.Difficulty,
		})
		if err != nil {
			return errorResult("Error listing workout templates: %s", err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type GetTemplateInput struct {
	TemplateID int `json:"template_id" jsonschema:"ID of the workout template"`
}

func (h *Handler) GetTemplateTool() func(context.Context, *mcp.CallToolRequest, GetTemplateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetTemplateInput) (*mcp.CallToolResult, any, error) {
		if in.TemplateID <= 0 || in.TemplateID > pkg.MaxInt4 {
			return errorResult("Invalid template_id: must be a positive number"), nil, nil
		}
		t, err := h.templates.Get(ctx, in.TemplateID)
		if err != nil {
			return errorResult("Error fetching workout template: %s", err), nil, nil
		}
		return jsonResult(t), nil, nil
	}
}

type ListWorkoutsInput struct {
	UserID *int `json:"user_id,omitempty" jsonschema:"Only workouts of this user; all users when omitted"`
}

func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
		if pkg.CheckInt4("user_id", in.UserID) != nil {
			return errorResult("Invalid user_id: out of range"), nil, nil
		}
		list, err := h.workouts.List(ctx, in.UserID)
		if err != nil {
			return errorResult("Error listing workouts: %s", err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: %s", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
