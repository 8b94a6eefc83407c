package core

import "io"

// InputStream is the byte-stream contract of a file opened for reading.
// End of data is reported as io.EOF.
type InputStream interface {
	io.Reader
	io.Closer
}

// OutputStream is the byte-stream contract of a file opened for writing.
type OutputStream interface {
	io.Writer
	io.Closer

	// Flush commits buffered data to the platform.
	Flush() error
}

// IOStream is the byte-stream contract of a file opened for both.
type IOStream interface {
	InputStream
	OutputStream
	io.Seeker
}
