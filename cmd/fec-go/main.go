package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fec-go/packages/compiler/src/diagnostics"
	"fec-go/packages/compiler/src/options"
	"fec-go/packages/compiler/src/summary"
)

var (
	cfg     = pflag.String("config", "", "Path to a YAML options file")
	_       = pflag.String("target", "vm", "Target platform")
	_       = pflag.String("sdk_root", "", "SDK root URI")
	_       = pflag.String("libraries_specification", "", "Libraries specification URI")
	_       = pflag.String("packages_file", "", "Package resolution file URI")
	_       = pflag.String("sdk_summary", "", "SDK summary URI")
	_       = pflag.StringSlice("input_summaries", nil, "Dependency summary URIs, in order")
	_       = pflag.StringSlice("linked_dependencies", nil, "Linked dependency program URIs, in order")
	_       = pflag.String("patches", "", "Path to a library patch manifest")
	_       = pflag.Bool("strong_mode", true, "Enable strong static checking")
	_       = pflag.Bool("embed_source_text", true, "Embed source text in the output")
	_       = pflag.Bool("verbose", false, "Chatty progress output")
	_       = pflag.Bool("verify", false, "Run extra output consistency checks")
	_       = pflag.Bool("debug_dump", false, "Dump intermediate representations")
	_       = pflag.Bool("stop_on_error", false, "Abandon compilation at the first error")
	_       = pflag.Bool("set_exit_code", false, "Exit non-zero when problems were reported")
	_       = pflag.Bool("report_messages", false, "Force console reporting on or off")
	preload = pflag.Bool("preload", false, "Read every summary up front and report missing inputs")
)

func main() {
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	o, err := loadOptions(*cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reporter := o.NewReporter()
	if err := o.Validate(); err != nil {
		_ = reporter.Report(diagnostics.CompilationMessage{
			Severity: diagnostics.SeverityError,
			Code:     "OPTIONS",
			Message:  err.Error(),
		})
	}

	if *preload && !reporter.HasProblems() {
		store := summary.NewStore(o)
		uris := append(append([]*url.URL{}, o.InputSummaries...), o.LinkedDependencies...)
		if err := store.Preload(uris); err != nil {
			_ = reporter.Report(diagnostics.CompilationMessage{
				Severity: diagnostics.SeverityError,
				Code:     "SUMMARY",
				Message:  err.Error(),
			})
		}
	}

	if o.Verbose {
		dump(o)
	}

	if o.SetExitCodeOnProblem && reporter.HasProblems() {
		os.Exit(1)
	}
}

func dump(o *options.CompilerOptions) {
	show := func(name string, u *url.URL) {
		if u == nil {
			o.Logger.Printf("%s: (discovered)", name)
			return
		}
		o.Logger.Printf("%s: %s", name, u)
	}
	o.Logger.Printf("target: %s (requires %v)", o.Target.Name(), o.Target.RequiredLibraries())
	show("sdk root", o.SdkRoot)
	show("libraries specification", o.LibrariesSpecification)
	show("packages file", o.PackagesFile)
	show("sdk summary", o.SdkSummary)
	o.Logger.Printf("input summaries: %d, linked dependencies: %d",
		len(o.InputSummaries), len(o.LinkedDependencies))
	for _, library := range options.PatchedLibraries(o.TargetPatches) {
		o.Logger.Printf("patched library %s: %d file(s)", library, len(o.TargetPatches[library]))
	}
	o.Logger.Printf("strong mode: %t, embed source text: %t, verify: %t, debug dump: %t",
		o.StrongMode, o.EmbedSourceText, o.Verify, o.DebugDump)
	o.Logger.Printf("console reporting: %t, stop on error: %t", o.ReportMessagesEnabled(), o.StopOnError)
}
