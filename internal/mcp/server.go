package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serverName    = "fittracker"
	serverVersion = "1.0.0"
)

// NewServer builds the MCP server with the read-only fitness tools.
// It is mounted by the main service at /mcp and served over stdio by cmd/fitness_mcp.
func NewServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise catalog (name, category, muscle groups, equipment, difficulty, instructions). Optional filters: category, muscle_group (substring match), difficulty.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_templates",
		Description: "Returns the workout templates with their ordered exercises (sets, reps, duration, rest). Optional filters: category, difficulty.",
	}, h.ListTemplatesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_template",
		Description: "Returns a single workout template with its ordered exercises. Arg: template_id.",
	}, h.GetTemplateTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns logged workouts with their exercises, newest date first. Optional: user_id.",
	}, h.ListWorkoutsTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP, traced with otelhttp.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
	return otelhttp.NewHandler(streamable, "mcp")
}
