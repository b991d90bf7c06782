package options

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadTargetPatches reads a YAML manifest mapping core library names to
// ordered lists of patch file URIs:
//
//	core:
//	  - patches/core/growable_list.fe
//	  - patches/core/string_buffer.fe
//	io:
//	  - patches/io/socket.fe
//
// The order of each library's entries is preserved.
func LoadTargetPatches(fsys afero.Fs, path string) (map[string][]*url.URL, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("options: unable to read patch manifest %s: %w", path, err)
	}

	var manifest map[string][]string
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("options: invalid patch manifest %s: %w", path, err)
	}

	patches := make(map[string][]*url.URL, len(manifest))
	for library, entries := range manifest {
		uris := make([]*url.URL, 0, len(entries))
		for _, entry := range entries {
			u, err := url.Parse(entry)
			if err != nil {
				return nil, fmt.Errorf("options: bad patch URI %q for library %s: %w", entry, library, err)
			}
			uris = append(uris, u)
		}
		patches[library] = uris
	}
	return patches, nil
}

// PatchedLibraries lists the library names in a patch map, sorted.
func PatchedLibraries(patches map[string][]*url.URL) []string {
	names := make([]string, 0, len(patches))
	for name := range patches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
