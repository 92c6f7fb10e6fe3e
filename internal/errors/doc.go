// Package errors provides structured, coded errors for fsroutes.
//
// Every failure that aborts route discovery is reported as an *Error
// carrying a stable code (e.g. "E101"), a category, the file-system path
// involved and the underlying cause.
//
// # Error Categories
//
//   - filesystem: the root or a subdirectory cannot be read
//   - module: a candidate endpoint file failed to load
//   - config: the fsroutes project file is missing or invalid
//   - pattern: an include or exclude glob does not parse
//   - mount: a discovered route could not be bound to a router
//
// # Usage
//
//	err := errors.New("E101").
//	    WithPath("/srv/app").
//	    Wrap(statErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Root directory not found
//	//
//	//   /srv/app
//	//
//	//   Hint: Check that the path exists and is readable
package errors
