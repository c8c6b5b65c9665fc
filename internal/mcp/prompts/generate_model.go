package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleGenerateJavaModel implements the JSON to Java model workflow.
func HandleGenerateJavaModel(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		pkg := cfg.DefaultPackage
		selectExpr := ""
		if req != nil && req.Params != nil && req.Params.Arguments != nil {
			if v, ok := req.Params.Arguments["package"]; ok && v != "" {
				pkg = v
			}
			if v, ok := req.Params.Arguments["select"]; ok {
				selectExpr = v
			}
		}

		var sb strings.Builder

		sb.WriteString("# Generate Jackson Model Classes\n\n")
		sb.WriteString("You are turning sample JSON payloads into Java classes that Jackson can deserialize them into. ")
		sb.WriteString("Aim for one run that covers every field the payloads can carry.\n\n")

		sb.WriteString("## How classes are derived\n\n")
		sb.WriteString("- Every non-empty object becomes a class named after its key in PascalCase (`shipping_address` -> `ShippingAddress`)\n")
		sb.WriteString("- An array of objects becomes `List<X>`, with X the key with trailing `s` removed (`line_items` -> `LineItem`)\n")
		sb.WriteString("- Fields of all array elements are merged into one class; a field missing from some elements is optional\n")
		sb.WriteString("- Strings shaped like `2024-01-15`, `13:45:00` or `2024-01-15T13:45:00` become `LocalDate`, `LocalTime`, `LocalDateTime`\n")
		sb.WriteString("- `null`, `{}` and unknown shapes become `String`; `[]` becomes `List<String>`\n")
		sb.WriteString("- Objects sharing a key name share one class, so unrelated `data` objects are merged\n\n")

		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **Infer** - Call `jackgen_infer_classes` with `include_stats: true`\n")
		sb.WriteString("   - Check `conflicts`: a field whose type changed between instances keeps the later type\n")
		sb.WriteString("   - Check `field_stats` for fields with frequency below 1.0; they come from merging elements\n")
		sb.WriteString("2. **Fix the sample** - If a conflict is wrong, edit the sample so the intended type comes last, or narrow with `select`\n")
		sb.WriteString("3. **Generate** - Call `jackgen_generate_classes` with `verify: true`\n")
		sb.WriteString("4. **Check more payloads** - Call `jackgen_validate_sample` with the first payload as `reference` and each new payload as `sample`\n\n")

		sb.WriteString("## Suggested Tools\n\n")
		sb.WriteString("```\n")
		args := []string{"json: <payload>"}
		if selectExpr != "" {
			args = append(args, fmt.Sprintf("select: %q", selectExpr))
		}
		sb.WriteString(fmt.Sprintf("jackgen_infer_classes(%s, include_stats: true)\n", strings.Join(args, ", ")))
		genArgs := append(args, fmt.Sprintf("package: %q", pkg))
		if cfg.DefaultAccess != "" {
			genArgs = append(genArgs, fmt.Sprintf("access: %q", cfg.DefaultAccess))
		}
		sb.WriteString(fmt.Sprintf("jackgen_generate_classes(%s, getters: true, setters: true, verify: true)\n", strings.Join(genArgs, ", ")))
		sb.WriteString("jackgen_validate_sample(reference: <payload>, sample: <another payload>)\n")
		sb.WriteString("```\n")

		return &sdkmcp.GetPromptResult{
			Description: "Workflow for generating Jackson model classes from JSON",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
