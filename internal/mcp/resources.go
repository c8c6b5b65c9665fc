package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/jackgen/internal/mcp/tools"
)

// Resource URI scheme: jackgen://
// Supported URIs:
//   jackgen://class/{digest}/{class}

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: tools.ClassResourceScheme + "{digest}/{class}",
		Name:        "Generated Java Class",
		Description: "Full Java source of a class rendered by jackgen_generate_classes. The tool returns these URIs in files[].resource_uri; sources stay available while the generation result is cached.",
		MIMEType:    tools.MimeJava,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.6,
		},
	}, s.handleResourceClass)
}

func (s *Server) handleResourceClass(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	digest, class, err := tools.ParseClassResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	file, ok := s.deps.ClassSource(digest, class)
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: tools.MimeJava,
				Text:     string(file.Content),
			},
		},
	}, nil
}
