//go:build !unix

package obsfile

// lockPath is a no-op where flock is unavailable; the temp file and rename
// still keep a failed save from clobbering the previous file.
func lockPath(string) (func(), error) {
	return func() {}, nil
}
