package fswalk

import (
	"path"
	"strings"

	"github.com/vango-dev/fsroutes/pkg/routepath"
)

// EndpointsDir is the directory name that anchors route discovery.
const EndpointsDir = "endpoints"

// Group is the set of files owned by one endpoints directory.
type Group struct {
	// Root is the endpoints directory, e.g. "/srv/app/api/endpoints".
	Root string

	// Files are the files below Root, in walk order.
	Files []string
}

// Locate groups files by their endpoints root. Groups appear in the order
// their first file was seen. Files outside any endpoints directory are
// dropped; no files or no endpoints directories yield no groups.
func Locate(root string, files []string) []Group {
	root = routepath.ToSlash(root)

	var groups []Group
	index := make(map[string]int)

	for _, file := range files {
		groupRoot, ok := EndpointsRoot(root, file)
		if !ok {
			continue
		}
		i, ok := index[groupRoot]
		if !ok {
			i = len(groups)
			index[groupRoot] = i
			groups = append(groups, Group{Root: groupRoot})
		}
		groups[i].Files = append(groups[i].Files, file)
	}

	return groups
}

// EndpointsRoot returns the outermost directory named "endpoints" that
// contains file, looking no higher than root. root itself counts when it
// is named "endpoints".
func EndpointsRoot(root, file string) (string, bool) {
	rel, err := routepath.Relative(root, file)
	if err != nil || rel == "." {
		return "", false
	}
	if path.Base(root) == EndpointsDir {
		return root, true
	}

	segments := strings.Split(rel, "/")
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == EndpointsDir {
			return path.Join(root, strings.Join(segments[:i+1], "/")), true
		}
	}
	return "", false
}
