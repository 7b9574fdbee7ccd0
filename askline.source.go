package askline

import (
	"bufio"
	"io"
)

// LineSource supplies one line of raw text per call. Implementations signal
// stream exhaustion with io.EOF and report other failures as-is; the engine
// treats both as fatal and never retries them.
//
// Implementations do not need to be safe for concurrent use; the engine
// serializes its own reads, and engines sharing a source across goroutines
// should use WithSerializedIO.
type LineSource interface {
	// ReadLine blocks until a full line is available, the stream ends, or
	// an I/O error occurs. The returned line includes its trailing line
	// terminator when one was present.
	ReadLine() (string, error)
}

// readerSource is the default LineSource over an io.Reader.
type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps an io.Reader (typically os.Stdin) as a LineSource.
func NewReaderSource(r io.Reader) LineSource {
	return &readerSource{r: bufio.NewReader(r)}
}

// ReadLine reads up to and including the next '\n'. A final line without a
// terminator is still delivered as input; io.EOF is only returned once no
// text remains.
func (s *readerSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
