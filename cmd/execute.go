package cmd

import (
	"hcc/common"
	"hcc/config"
	"hcc/report"
	"hcc/syntax"
	"os"
	"strings"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `hcc` CLI utility
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("hcc", "hcc compiles HexenC source into progs images", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, report.LogLevelNames)
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile the files of a source list", true)
	buildCmd.AddStringArg("srcdir", "src", "the source directory: all other paths are relative to it", false)
	buildCmd.AddStringArg("name", "name", "the source list to compile (default progs.src)", false)
	buildCmd.AddFlag("optimize-immediates", "oi", "fold constant operands")
	buildCmd.AddFlag("optimize-names", "on", "collapse the names of locals in the descriptor tables")
	buildCmd.AddFlag("legacy", "old", "save STR_ constants with the game state")
	buildCmd.AddFlag("no-warnings", "nowarnings", "suppress warnings")
	buildCmd.AddFlag("unref-funcs", "urfunc", "report unreferenced functions")
	buildCmd.AddFlag("file-info", "fileinfo", "show object sizes per file")
	buildCmd.AddFlag("quiet", "quiet", "do not list files as they are compiled")
	buildCmd.AddStringArg("asm", "asm", "comma separated functions to disassemble", false)

	initCmd := cli.AddSubcommand("init", "write a default project file", true)
	initCmd.AddStringArg("srcdir", "src", "the source directory", false)

	cli.AddSubcommand("version", "print the hcc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	report.InitReporter(report.LogLevelFromName(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult)
	case "init":
		execInitCommand(subResult)
	case "version":
		report.ReportInfo("hcc v%s (progs version %d)", common.HccVersion, common.ProgVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult) {
	proj, err := config.Load(stringArg(result, "srcdir", "."))
	if err != nil {
		report.ReportFatal("%s", err)
	}

	proj.Options.Merge(config.Options{
		OptimizeImmediates: result.HasFlag("optimize-immediates"),
		OptimizeNames:      result.HasFlag("optimize-names"),
		Legacy:             result.HasFlag("legacy"),
		NoWarnings:         result.HasFlag("no-warnings"),
		ShowUnrefFuncs:     result.HasFlag("unref-funcs"),
		FileInfo:           result.HasFlag("file-info"),
		Quiet:              result.HasFlag("quiet"),
	})

	c := NewCompiler(proj, stringArg(result, "name", common.DefaultSourceList), syntax.Compiler{})

	if asm := stringArg(result, "asm", ""); asm != "" {
		c.Disassemble = strings.Split(asm, ",")
	}

	report.ReportCompileHeader(proj.Dir)

	if err := c.Run(); err != nil {
		report.ReportError("Compile Error", err)
		report.ReportFatal("compilation errors")
	}

	report.ReportCompilationFinished()
}

// execInitCommand executes the init subcommand
func execInitCommand(result *olive.ArgParseResult) {
	dir := stringArg(result, "srcdir", ".")
	if err := config.Init(dir); err != nil {
		report.ReportFatal("project init failed: %s", err)
	}

	report.ReportInfo("wrote %s", config.DefaultProject(dir).Path(common.ProjectFileName))
}

// stringArg returns the value of an optional string argument.
func stringArg(result *olive.ArgParseResult, name, def string) string {
	if val, ok := result.Arguments[name]; ok {
		if s, ok := val.(string); ok && s != "" {
			return s
		}
	}

	return def
}
