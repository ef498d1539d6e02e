package cli

import (
	"bufio"
	"context"
	"io"
)

// readLine reads up to and including the first newline of in.
// A final line without a newline is returned as is; empty input yields "".
// If ctx is cancelled first, readLine returns ctx.Err() and abandons the
// read: the reading goroutine stays blocked on in until in yields data or
// closes. Callers are expected to exit soon after.
func readLine(ctx context.Context, in io.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}
