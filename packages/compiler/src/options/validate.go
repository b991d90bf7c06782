package options

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the shape of the options and reports every problem found.
// It does not check the closure or acyclicity of summaries; that is the
// compiler's job once it loads them.
func (o *CompilerOptions) Validate() error {
	var err error
	if o.Target == nil {
		err = multierror.Append(err, errors.New("options: no target platform configured"))
	}
	if o.FileSystem == nil {
		err = multierror.Append(err, errors.New("options: no file system configured"))
	}
	if o.Logger == nil && o.ReportMessagesEnabled() {
		err = multierror.Append(err, errors.New("options: console reporting enabled without a logger"))
	}
	err = appendURIErrors(err, "input summary", o.InputSummaries)
	err = appendURIErrors(err, "linked dependency", o.LinkedDependencies)
	for library, uris := range o.TargetPatches {
		if len(uris) == 0 {
			err = multierror.Append(err, fmt.Errorf("options: library %s has an empty patch list", library))
			continue
		}
		err = appendURIErrors(err, fmt.Sprintf("patch for library %s", library), uris)
	}
	return err
}

func appendURIErrors(err error, kind string, uris []*url.URL) error {
	for i, u := range uris {
		if u == nil {
			err = multierror.Append(err, fmt.Errorf("options: %s %d is nil", kind, i))
		}
	}
	return err
}
