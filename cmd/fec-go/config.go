package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"fec-go/packages/compiler/src/options"
)

func setDefaults() {
	viper.SetDefault("target", "vm")
	viper.SetDefault("strong_mode", true)
	viper.SetDefault("embed_source_text", true)
}

// loadOptions merges the optional YAML options file with the command-line
// flags (flags win) and builds the resulting CompilerOptions.
func loadOptions(path string) (*options.CompilerOptions, error) {
	setDefaults()
	if path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read options file %s: %w", path, err)
		}
	}

	targetName := viper.GetString("target")
	target, ok := options.LookupTarget(targetName)
	if !ok {
		return nil, fmt.Errorf("unknown target %q (known targets: %s)",
			targetName, strings.Join(options.TargetNames(), ", "))
	}

	opts := []options.Option{
		options.WithTarget(target),
		options.WithStrongMode(viper.GetBool("strong_mode")),
		options.WithEmbedSourceText(viper.GetBool("embed_source_text")),
		options.WithVerbose(viper.GetBool("verbose")),
		options.WithVerify(viper.GetBool("verify")),
		options.WithDebugDump(viper.GetBool("debug_dump")),
		options.WithStopOnError(viper.GetBool("stop_on_error")),
		options.WithSetExitCodeOnProblem(viper.GetBool("set_exit_code")),
	}

	locations := []struct {
		key  string
		with func(*url.URL) options.Option
	}{
		{"sdk_root", options.WithSdkRoot},
		{"libraries_specification", options.WithLibrariesSpecification},
		{"packages_file", options.WithPackagesFile},
		{"sdk_summary", options.WithSdkSummary},
	}
	for _, loc := range locations {
		raw := viper.GetString(loc.key)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("bad %s %q: %w", strings.ReplaceAll(loc.key, "_", " "), raw, err)
		}
		opts = append(opts, loc.with(u))
	}

	inputSummaries, err := parseURIList("input summary", viper.GetStringSlice("input_summaries"))
	if err != nil {
		return nil, err
	}
	if len(inputSummaries) > 0 {
		opts = append(opts, options.WithInputSummaries(inputSummaries...))
	}

	linked, err := parseURIList("linked dependency", viper.GetStringSlice("linked_dependencies"))
	if err != nil {
		return nil, err
	}
	if len(linked) > 0 {
		opts = append(opts, options.WithLinkedDependencies(linked...))
	}

	if viper.IsSet("report_messages") {
		opts = append(opts, options.WithReportMessages(viper.GetBool("report_messages")))
	}

	o := options.NewCompilerOptions(opts...)

	if manifest := viper.GetString("patches"); manifest != "" {
		patches, err := options.LoadTargetPatches(o.FileSystem, manifest)
		if err != nil {
			return nil, err
		}
		o.TargetPatches = patches
	}
	return o, nil
}

func parseURIList(kind string, raw []string) ([]*url.URL, error) {
	uris := make([]*url.URL, 0, len(raw))
	for _, entry := range raw {
		u, err := url.Parse(entry)
		if err != nil {
			return nil, fmt.Errorf("bad %s %q: %w", kind, entry, err)
		}
		uris = append(uris, u)
	}
	return uris, nil
}
