// Package handle provides owning wrappers around raw platform handles.
//
// A File owns one open RawFile and a Directory owns one open RawDir. Each
// releases its resource exactly once: on the first Close, or when the
// wrapper becomes unreachable without having been closed. Further Close
// calls are no-ops returning nil.
//
// File enforces the access flags it was opened with. Reading from a file
// opened without read access, or writing without write access, fails with
// an INVALID_STATE error and never reaches the platform.
//
// Directory exposes its entries as a lazy, single-pass sequence:
//
//	d, err := handle.OpenDir(platform, "logs")
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	for entry, err := range d.Contents() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(entry.Name)
//	}
//
// Handles are exclusively owned by the caller that opened them and are not
// safe for concurrent use.
package handle
