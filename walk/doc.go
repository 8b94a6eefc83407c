// Package walk is the traversal engine: lazy recursive enumeration and
// post-order recursive removal over a core.Platform.
//
// FindFiles produces entries in pre-order. A directory entry is yielded
// before any of its descendants, and siblings appear in platform-native
// order. Entry names are relative paths prefixed with the base directory.
//
//	for entry, err := range walk.FindFiles(p, "src", true) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(entry.Name) // src/main.go, src/pkg, src/pkg/util.go, ...
//	}
//
// Enumeration is lazy. Only the directories on the path from the base to the
// current entry are open at any time, and each is closed as soon as its level
// finishes or the consumer stops ranging.
//
// A subdirectory that cannot be opened (for example because it was deleted
// concurrently) contributes no entries and does not fail the walk. A read
// failure in the middle of a directory is yielded once and ends that
// directory's level; the walk then continues with the next sibling of the
// failed directory.
//
// Remove deletes a path, and with recursive set, everything below it. It
// aborts on the first entry it cannot remove and leaves the remainder in
// place.
//
// Symbolic links and other special entries are neither files nor
// directories. They are yielded but never descended into, and Remove
// unlinks them without touching their targets.
package walk
