package mcp

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/starrating/pkg/adapters/memory"
	"github.com/aretw0/starrating/pkg/domain"
)

func newTestServer(opts ...Option) *Server {
	return NewServer(memory.NewBuiltin(), opts...)
}

func TestServer_WidgetTools(t *testing.T) {
	ctx := context.Background()
	var commits []float64
	s := newTestServer(WithHooks(domain.LifecycleHooks{
		OnCommit: func(_ context.Context, e *domain.RatingEvent) { commits = append(commits, e.Rating) },
	}))
	req := mcp.CallToolRequest{}

	// 1. Create from preset with props
	view, err := s.handleCreateWidget(ctx, req, map[string]interface{}{
		"preset": "half-star-rating",
		"props":  `{"initialRating": 1}`,
	})
	require.NoError(t, err)
	require.NotEmpty(t, view.ID)
	assert.True(t, view.Config.HalfRating)
	assert.Equal(t, 1.0, view.Committed)
	assert.Equal(t, "★☆☆☆☆  1/5", view.Row)

	id := map[string]interface{}{"widget_id": view.ID}
	with := func(kv ...interface{}) map[string]interface{} {
		args := map[string]interface{}{"widget_id": view.ID}
		for i := 0; i < len(kv); i += 2 {
			args[kv[i].(string)] = kv[i+1]
		}
		return args
	}

	// 2. Hover
	view, err = s.handlePointerMove(ctx, req, with("star_index", 4.0, "fraction", 0.9))
	require.NoError(t, err)
	assert.Equal(t, 5.0, view.Displayed)
	assert.Equal(t, domain.ModeHovering, view.Mode)
	require.NotNil(t, view.Changes)
	assert.Equal(t, 5.0, *view.Changes.Preview)

	// 3. Click (fraction defaults to the right edge)
	view, err = s.handleClick(ctx, req, with("star_index", 2.0))
	require.NoError(t, err)
	assert.Equal(t, 3.0, view.Committed)

	// 4. Leave
	view, err = s.handlePointerLeave(ctx, req, id)
	require.NoError(t, err)
	assert.Equal(t, 3.0, view.Displayed)
	assert.Nil(t, view.Preview)

	// 5. Deselect
	view, err = s.handleClick(ctx, req, with("star_index", 2.0, "fraction", 0.7))
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.Committed)
	assert.Equal(t, []float64{3, 0}, commits)

	// 6. Get with SVG
	view, err = s.handleGetWidget(ctx, req, with("svg", true))
	require.NoError(t, err)
	assert.Contains(t, view.SVG, "<svg")
	assert.Nil(t, view.Changes)
}

func TestServer_ToolErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()
	req := mcp.CallToolRequest{}

	t.Run("Unknown Widget", func(t *testing.T) {
		_, err := s.handlePointerLeave(ctx, req, map[string]interface{}{"widget_id": "nope"})
		assert.ErrorIs(t, err, domain.ErrWidgetNotFound)
	})

	t.Run("Unknown Preset", func(t *testing.T) {
		_, err := s.handleCreateWidget(ctx, req, map[string]interface{}{"preset": "nope"})
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	})

	t.Run("Bad Props", func(t *testing.T) {
		_, err := s.handleCreateWidget(ctx, req, map[string]interface{}{"props": "[1,2]"})
		assert.ErrorContains(t, err, "props must be a JSON object")

		_, err = s.handleCreateWidget(ctx, req, map[string]interface{}{"props": `{"stars_length": 0}`})
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("Missing Star", func(t *testing.T) {
		view, err := s.handleCreateWidget(ctx, req, nil)
		require.NoError(t, err)
		_, err = s.handleClick(ctx, req, map[string]interface{}{"widget_id": view.ID})
		assert.ErrorContains(t, err, "star_index is required")
	})

	t.Run("Non Integral Star", func(t *testing.T) {
		view, err := s.handleCreateWidget(ctx, req, nil)
		require.NoError(t, err)

		for _, star := range []float64{2.7, math.NaN(), math.Inf(1), 1e300} {
			_, err = s.handleClick(ctx, req, map[string]interface{}{"widget_id": view.ID, "star_index": star})
			assert.ErrorContains(t, err, "star_index must be an integer", "%v", star)
		}

		got, err := s.handleGetWidget(ctx, req, map[string]interface{}{"widget_id": view.ID})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Committed)
	})
}

func TestServer_ListPresets(t *testing.T) {
	s := newTestServer()
	list, err := s.handleListPresets(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, list.Presets, 8)
	assert.Equal(t, "basic", list.Presets[0].ID)
}

func TestServer_Registration(t *testing.T) {
	s := newTestServer()

	tools := s.MCPServer().ListTools()
	for _, name := range []string{"create_widget", "pointer_move", "pointer_leave", "click", "get_widget", "list_presets"} {
		assert.Contains(t, tools, name)
	}

	// Resource round-trip through the JSON-RPC entry point
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "resources/read",
		"params":  map[string]any{"uri": PresetsURI},
	})
	require.NoError(t, err)

	resp := s.MCPServer().HandleMessage(context.Background(), msg)
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(out), "half-star-rating")
}
