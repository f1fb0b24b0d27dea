// Package file provides a file-based DataFetcher implementation for the config package.
//
// Fetchers read their source once, when constructed, and serve copies of the
// cached bytes afterwards. The pathwalk binary uses them both for its own
// settings and for the document being walked, which may come from standard
// input by passing StdinPath ("-").
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/doc.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Errors include the path; use errors.Is(err, file.ErrPathIsDirectory) to
// detect directories.
package file
