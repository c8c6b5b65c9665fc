// Package mcpsrv provides an extensible MCP server for jackgen.
//
// The server exposes the JSON to Java class generator as MCP tools
// (jackgen_infer_classes, jackgen_generate_classes, jackgen_validate_sample),
// serves generated sources as jackgen://class resources and ships a
// generate_java_model prompt. Users can extend it with their own tools,
// prompts and resources using functional options.
//
// # Basic Usage
//
//	server, err := mcpsrv.NewServer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Tools that need the generator receive it through Deps:
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "count_classes", Description: "Count the classes a document maps to"},
//	    func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, in MyInput) (*mcp.CallToolResult, MyOutput, error) {
//	        return func(ctx context.Context, req *mcp.CallToolRequest, in MyInput) (*mcp.CallToolResult, MyOutput, error) {
//	            m, _, err := d.Generator.Analyze([]byte(in.JSON), "Root", "")
//	            if err != nil {
//	                return nil, MyOutput{}, err
//	            }
//	            return nil, MyOutput{Count: m.Classes.Len()}, nil
//	        }
//	    },
//	)
//
// # Configuration
//
// Configuration is read from the environment (JACKGEN_PACKAGE, LOG_LEVEL, ...)
// and can be overridden with options:
//
//	server, err := mcpsrv.NewServer(
//	    mcpsrv.WithLogLevel("debug"),
//	    mcpsrv.WithLogFile("/var/log/jackgen.log"),
//	)
package mcpsrv
