package mcp

import "github.com/mark3labs/mcp-go/mcp"

var overviewToolDef = mcp.NewTool("get_overview",
	mcp.WithDescription("Get a structural overview of a file: line count, size, encoding, a code outline, and suggested search patterns. Call this first to orient before searching or reading."),
	mcp.WithString("absolute_file_path",
		mcp.Required(),
		mcp.Description("Absolute path to the file"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
)

var searchToolDef = mcp.NewTool("search_content",
	mcp.WithDescription("Search a file for a pattern with surrounding context lines. Exact substring matching by default; enable fuzzy matching to also find approximate occurrences."),
	mcp.WithString("absolute_file_path",
		mcp.Required(),
		mcp.Description("Absolute path to the file"),
	),
	mcp.WithString("search_pattern",
		mcp.Required(),
		mcp.Description("Text to search for"),
	),
	mcp.WithBoolean("fuzzy_matching",
		mcp.Description("Also include similarity-scored approximate matches"),
	),
	mcp.WithNumber("max_results",
		mcp.Description("Maximum number of results to return"),
	),
	mcp.WithNumber("context_lines",
		mcp.Description("Lines of context before and after each match"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
)

var readToolDef = mcp.NewTool("read_content",
	mcp.WithDescription("Read a window of file content around a target, identified either by 1-based line number or by a search pattern. Returns a bounded window, never the whole file."),
	mcp.WithString("absolute_file_path",
		mcp.Required(),
		mcp.Description("Absolute path to the file"),
	),
	mcp.WithNumber("target_line",
		mcp.Description("1-based line number to read from"),
	),
	mcp.WithString("target_pattern",
		mcp.Description("Pattern locating the content to read"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithIdempotentHintAnnotation(true),
)

var editToolDef = mcp.NewTool("edit_content",
	mcp.WithDescription("Replace text in a file by search/replace. Creates a timestamped backup before writing and writes atomically. Use preview_only to see the diff without modifying the file."),
	mcp.WithString("absolute_file_path",
		mcp.Required(),
		mcp.Description("Absolute path to the file"),
	),
	mcp.WithString("search_text",
		mcp.Required(),
		mcp.Description("Exact text to find"),
	),
	mcp.WithString("replace_text",
		mcp.Required(),
		mcp.Description("Replacement text"),
	),
	mcp.WithBoolean("fuzzy_matching",
		mcp.Description("Fall back to replacing the closest-matching line when no exact occurrence exists"),
	),
	mcp.WithBoolean("preview_only",
		mcp.Description("Render the diff without writing"),
	),
	mcp.WithNumber("max_replacements",
		mcp.Description("Maximum exact occurrences to replace (default 1)"),
	),
	mcp.WithDestructiveHintAnnotation(true),
)
