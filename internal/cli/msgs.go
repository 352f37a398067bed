package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Build static, searchable SVG icon libraries"
	MsgBuildShort      = "Build collection files and the manifest from an icon tree"
	MsgListShort       = "List the collections in a built library"
	MsgStatsShort      = "Show style and category counts per collection"
	MsgStatsLong       = "Stats reads a built library and prints, per collection, how many icons each style and category holds. Pass collection names to limit the output."
	MsgSearchShort     = "Fuzzy search icons in a built library"
	MsgSearchLong      = "Search matches the query against icon names and categories the same way the browser UI does, then applies the exact collection and style filters."
	MsgClassifyShort   = "Show how relative icon paths would be classified"
	MsgClassifyLong    = "Classify runs the path classifier on the given paths, relative to the input root, using the configured layout table. No files are read."
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgConfigLong      = "Config prints the configuration after merging the built-in defaults, the project file, ICONLIB_* environment variables and command line flags."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default: iconlib.toml in the working directory)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagInput       = "Icon tree to scan (input.dir)"
	MsgFlagOutput      = "Output directory (output.dir)"
	MsgFlagConcurrency = "Maximum number of files read at once (loader.concurrency)"
	MsgFlagNoNormalize = "Keep icon colors untouched"
	MsgFlagFillToken   = "Value written into the root fill or stroke (normalize.token)"
	MsgFlagCompact     = "Write JSON without indentation"
	MsgFlagCollection  = "Only search this collection"
	MsgFlagStyle       = "Only return icons with this style"
	MsgFlagLimit       = "Maximum number of results (0 for all)"

	// Errors
	MsgErrNoCommand      = "no command specified"
	MsgErrUnknownCollect = "collection %q is not in the manifest"

	// Version output
	MsgVersionFormat = "iconlib version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages embedded from files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/search-example.txt
	msgSearchExampleRaw string
	MsgSearchExample    = strings.TrimRight(msgSearchExampleRaw, "\n")

	//go:embed msgs/classify-example.txt
	msgClassifyExampleRaw string
	MsgClassifyExample    = strings.TrimRight(msgClassifyExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
