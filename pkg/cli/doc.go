// Package cli implements the command-line interface for the fileversion tool.
//
// # Overview
//
// fileversion maintains a four-part version number (Major.Minor.Build.Revision)
// stored on the first line of a text file. It is meant to be called from build
// pipelines that stamp assemblies or artifacts with an auto-incremented version.
//
// # Commands
//
// increment - Increment one component:
//
//	fileversion increment --file VERSION [--part build] [--by 1]
//
// reset - Replace the stored version:
//
//	fileversion reset --file VERSION --value 2.0.0.0
//
// get - Read one or more versions without touching the files:
//
//	fileversion get --file a/VERSION --file b/VERSION
//
// exec - Dispatch an action by name, as a build task would:
//
//	fileversion exec --action Increment --file VERSION --part Revision
//
// # Global Flags
//
//	--log-level     Logging verbosity: debug, info, warn, error (default: info)
//	--config        Config file (default: .fileversion.yaml in the working or home directory)
//	--metrics-file  Write Prometheus metrics in text format when the command finishes
//
// # Output Formats
//
// Results are written to stdout, or to --output, as YAML (default), JSON or a
// table. Nothing is written when the command fails.
//
// # Environment Variables
//
//	LOG_LEVEL                 Logging verbosity
//	FILEVERSION_FILE          Version file path
//	FILEVERSION_PART          Component to increment
//	FILEVERSION_INCREMENT     Increment amount
//	FILEVERSION_ENCODING      File text encoding
//	FILEVERSION_FORMAT        Output format
//	FILEVERSION_ACTION        Action for exec
//	FILEVERSION_CONFIG        Config file path
//	FILEVERSION_METRICS_FILE  Metrics output path
//
// Precedence is flag, then environment variable, then config file, then the
// built-in default.
//
// # Exit Codes
//
//	0  Success
//	1  Any failure; the structured error is printed to stderr
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/fileversion/pkg/cli.version=1.0.0'"
package cli
