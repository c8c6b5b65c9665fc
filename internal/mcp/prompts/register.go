package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "generate_java_model",
		Description: "RECOMMENDED: Turn a sample JSON payload into Jackson model classes. Walks through inferring the class model, resolving type conflicts, generating sources and checking further samples.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "package",
				Description: "Java package for the generated classes (e.g., 'com.acme.api.model')",
				Required:    false,
			},
			{
				Name:        "select",
				Description: "jq path of the part of the payload to model (e.g., '.data.items')",
				Required:    false,
			},
		},
	}, HandleGenerateJavaModel(cfg))
}
