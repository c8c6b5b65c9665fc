package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: jackgen_infer_classes
	AddTool(srv, &sdkmcp.Tool{
		Name:        "jackgen_infer_classes",
		Description: "Infer the Java class model of a JSON document without rendering code. Returns {root_class, classes: [{name, instances, fields: [{name, source_key, type, occurrences, nullable}]}], conflicts, hint}. Nested objects become classes named after their key in PascalCase; arrays of objects become List<X> with X the singularized key, merging fields across all elements. Set include_stats for per-field frequency and include_schema for the equivalent JSON Schema. Use select (jq path) to model only part of the document.",
	}, ToolInferClasses(d))

	// Tool 2: jackgen_generate_classes
	AddTool(srv, &sdkmcp.Tool{
		Name:        "jackgen_generate_classes",
		Description: "Generate Jackson-annotated Java classes from a JSON document. Returns {root_class, package, files: [{class, file_name, path, resource_uri, content}], conflicts, validation, hint}. Sources are returned as resource URIs unless include_sources is set; set output_dir to also write the .java files to disk. Options mirror the CLI: package, access (READ_ONLY, WRITE_ONLY, READ_WRITE, AUTO), getters, setters.",
	}, ToolGenerateClasses(d))

	// Tool 3: jackgen_validate_sample
	AddTool(srv, &sdkmcp.Tool{
		Name:        "jackgen_validate_sample",
		Description: "Check whether a sample JSON document fits the classes generated from a reference document. Returns {valid, summary, errors, root_class, class_count, hint}. Errors are JSON Pointer paths into the sample with the reason, e.g. type mismatches or missing required fields. Use this before regenerating to see whether new payloads still deserialize.",
	}, ToolValidateSample(d))
}
