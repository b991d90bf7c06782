package options

import (
	"log"
	"net/url"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"

	"fec-go/packages/compiler/src/diagnostics"
)

// defaultByteStoreSize bounds the number of summary blobs kept in memory.
const defaultByteStoreSize = 256

// CompilerOptions carries every knob one compilation invocation reads. It is
// constructed once, read by the compiler, never mutated by the compiler
// itself, and discarded when the invocation completes.
type CompilerOptions struct {
	// SdkRoot locates the SDK. When nil the compiler discovers it.
	SdkRoot *url.URL

	// LibrariesSpecification locates the libraries specification file.
	// When nil the compiler derives it from SdkRoot.
	LibrariesSpecification *url.URL

	// PackagesFile locates the package resolution file. When nil the
	// compiler searches for one relative to the entry point.
	PackagesFile *url.URL

	// SdkSummary locates the prebuilt SDK summary. When nil the compiler
	// derives a default location from SdkRoot.
	SdkSummary *url.URL

	// InputSummaries lists summaries of dependencies, in order. Each entry
	// must be acyclic and closed over its references; the compiler enforces
	// that, not this struct.
	InputSummaries []*url.URL

	// LinkedDependencies lists precompiled dependency programs to link
	// against, in order, under the same closure requirement.
	LinkedDependencies []*url.URL

	// TargetPatches maps a core library name to the ordered patch files
	// that override it for the selected target.
	TargetPatches map[string][]*url.URL

	// Target is the platform the output runs on.
	Target Target

	// FileSystem is the file access capability used for all reads. The
	// default is the physical file system.
	FileSystem afero.Fs

	// ByteStore caches raw summary bytes across reads within an invocation.
	ByteStore *lru.Cache[string, []byte]

	// Logger receives console-reported messages and verbose output.
	Logger *log.Logger

	// OnError, when set, receives every reported compilation message.
	OnError diagnostics.ErrorHandler

	// ReportMessages controls console reporting. When nil, messages are
	// reported to the console only if OnError is unset.
	ReportMessages *bool

	// StrongMode selects the strong static checking mode.
	StrongMode bool

	// Verbose enables chatty progress output on Logger.
	Verbose bool

	// Verify runs extra internal consistency checks on the output.
	Verify bool

	// DebugDump writes intermediate representations for debugging.
	DebugDump bool

	// SetExitCodeOnProblem makes the process exit non-zero when any
	// problem was reported.
	SetExitCodeOnProblem bool

	// EmbedSourceText includes source text in the generated output.
	EmbedSourceText bool

	// StopOnError abandons the compilation at the first fatal message.
	StopOnError bool
}

// Option mutates a CompilerOptions under construction.
type Option func(*CompilerOptions)

// NewCompilerOptions creates options with the documented defaults applied,
// then applies opts in order.
func NewCompilerOptions(opts ...Option) *CompilerOptions {
	byteStore, _ := lru.New[string, []byte](defaultByteStoreSize)
	o := &CompilerOptions{
		Target:          DefaultTarget(),
		FileSystem:      afero.NewOsFs(),
		ByteStore:       byteStore,
		Logger:          log.New(os.Stderr, "", 0),
		StrongMode:      true,
		EmbedSourceText: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ReportMessagesEnabled resolves the console-reporting flip: an explicit
// ReportMessages wins; otherwise messages go to the console only when no
// OnError handler is installed.
func (o *CompilerOptions) ReportMessagesEnabled() bool {
	if o.ReportMessages != nil {
		return *o.ReportMessages
	}
	return o.OnError == nil
}

// NewReporter builds the reporter implied by the options' reporting policy.
func (o *CompilerOptions) NewReporter() *diagnostics.Reporter {
	return diagnostics.NewReporter(o.OnError, o.Logger, o.ReportMessagesEnabled(), o.StopOnError)
}

// WithSdkRoot sets the SDK root location.
func WithSdkRoot(u *url.URL) Option {
	return func(o *CompilerOptions) { o.SdkRoot = u }
}

// WithLibrariesSpecification sets the libraries specification location.
func WithLibrariesSpecification(u *url.URL) Option {
	return func(o *CompilerOptions) { o.LibrariesSpecification = u }
}

// WithPackagesFile sets the package resolution file location.
func WithPackagesFile(u *url.URL) Option {
	return func(o *CompilerOptions) { o.PackagesFile = u }
}

// WithSdkSummary sets the SDK summary location.
func WithSdkSummary(u *url.URL) Option {
	return func(o *CompilerOptions) { o.SdkSummary = u }
}

// WithInputSummaries sets the ordered dependency summaries.
func WithInputSummaries(uris ...*url.URL) Option {
	return func(o *CompilerOptions) { o.InputSummaries = uris }
}

// WithLinkedDependencies sets the ordered linked dependency programs.
func WithLinkedDependencies(uris ...*url.URL) Option {
	return func(o *CompilerOptions) { o.LinkedDependencies = uris }
}

// WithTargetPatches sets the library patch map.
func WithTargetPatches(patches map[string][]*url.URL) Option {
	return func(o *CompilerOptions) { o.TargetPatches = patches }
}

// WithTarget sets the target platform.
func WithTarget(t Target) Option {
	return func(o *CompilerOptions) { o.Target = t }
}

// WithFileSystem sets the file access capability.
func WithFileSystem(fs afero.Fs) Option {
	return func(o *CompilerOptions) { o.FileSystem = fs }
}

// WithByteStore sets the summary byte cache.
func WithByteStore(c *lru.Cache[string, []byte]) Option {
	return func(o *CompilerOptions) { o.ByteStore = c }
}

// WithLogger sets the console logger.
func WithLogger(l *log.Logger) Option {
	return func(o *CompilerOptions) { o.Logger = l }
}

// WithOnError installs the error-reporting callback.
func WithOnError(handler diagnostics.ErrorHandler) Option {
	return func(o *CompilerOptions) { o.OnError = handler }
}

// WithReportMessages explicitly enables or disables console reporting,
// overriding the default flip.
func WithReportMessages(report bool) Option {
	return func(o *CompilerOptions) { o.ReportMessages = &report }
}

// WithStrongMode sets the strong mode flag.
func WithStrongMode(on bool) Option {
	return func(o *CompilerOptions) { o.StrongMode = on }
}

// WithVerbose sets the verbose flag.
func WithVerbose(on bool) Option {
	return func(o *CompilerOptions) { o.Verbose = on }
}

// WithVerify sets the verify flag.
func WithVerify(on bool) Option {
	return func(o *CompilerOptions) { o.Verify = on }
}

// WithDebugDump sets the debug dump flag.
func WithDebugDump(on bool) Option {
	return func(o *CompilerOptions) { o.DebugDump = on }
}

// WithSetExitCodeOnProblem sets the exit-code propagation flag.
func WithSetExitCodeOnProblem(on bool) Option {
	return func(o *CompilerOptions) { o.SetExitCodeOnProblem = on }
}

// WithEmbedSourceText sets whether source text is embedded in output.
func WithEmbedSourceText(on bool) Option {
	return func(o *CompilerOptions) { o.EmbedSourceText = on }
}

// WithStopOnError sets the strict fail-on-first-error flag.
func WithStopOnError(on bool) Option {
	return func(o *CompilerOptions) { o.StopOnError = on }
}
