package mcpsrv

import (
	"context"
	"path/filepath"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/jackgen/internal/config"
)

type countInput struct {
	JSON string `json:"json"`
}

type countOutput struct {
	Count int `json:"count"`
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.LogFile = filepath.Join(t.TempDir(), "jackgen.log")
	cfg.LogLevel = "debug"
	return cfg
}

func listTools(t *testing.T, s *Server) []string {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := s.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	res, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestNewServer_Builtins(t *testing.T) {
	s, err := NewServer(WithConfig(testConfig(t)), WithPackage("org.acme"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NotNil(t, s.Deps())
	assert.NotNil(t, s.Deps().Generator)
	assert.NotNil(t, s.Deps().Cache)
	assert.Equal(t, "org.acme", s.Deps().Config.Package)

	assert.Contains(t, listTools(t, s), "jackgen_generate_classes")
}

func TestNewServer_DepsTool(t *testing.T) {
	s, err := NewServer(
		WithConfig(testConfig(t)),
		WithoutBuiltinTools(),
		WithoutBuiltinPrompts(),
		WithDepsTool(
			&mcp.Tool{Name: "count_classes", Description: "Count the classes a document maps to"},
			func(d *Deps) func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, countOutput, error) {
				return func(ctx context.Context, req *mcp.CallToolRequest, in countInput) (*mcp.CallToolResult, countOutput, error) {
					m, _, err := d.Generator.Analyze([]byte(in.JSON), "Root", "")
					if err != nil {
						return nil, countOutput{}, err
					}
					return nil, countOutput{Count: m.Classes.Len()}, nil
				}
			},
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, []string{"count_classes"}, listTools(t, s))
}

func TestAddTool_PanicsOnNullSlice(t *testing.T) {
	type badOutput struct {
		Items []string `json:"items"`
	}
	srv := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	assert.Panics(t, func() {
		AddTool(srv, &mcp.Tool{Name: "bad"}, func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, badOutput, error) {
			return nil, badOutput{}, nil
		})
	})
}
