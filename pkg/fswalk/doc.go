// Package fswalk enumerates the files below a root directory and groups
// them by the endpoints directory that owns them.
//
// Traversal uses an explicit work-list instead of recursion, so deeply
// nested trees cannot exhaust the call stack. Children are pushed in
// reverse lexical order, which makes pops visit the tree in lexical
// pre-order: the output is deterministic for a fixed snapshot.
//
//	w := fswalk.New(afero.NewOsFs(), logger)
//	files, err := w.Files(ctx, "/srv/app")
//	for _, g := range fswalk.Locate("/srv/app", files) {
//	    // g.Root == "/srv/app/api/endpoints", g.Files == [...]
//	}
package fswalk
