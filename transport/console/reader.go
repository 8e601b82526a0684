package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type token struct {
	text string
	err  error
}

// Reader yields whitespace-separated tokens typed by the local player.
type Reader struct {
	scanner *bufio.Scanner

	once   sync.Once
	tokens chan token
}

func NewReader(in io.Reader) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Reader{
		scanner: scanner,
		tokens:  make(chan token),
	}
}

// ReadMove returns the next token, or io.EOF once input is exhausted. It gives up as soon as ctx
// is done, even while the input blocks.
func (that *Reader) ReadMove(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case tok, ok := <-that.tokens:
		if !ok {
			return "", io.EOF
		}

		return tok.text, tok.err
	}
}

// scan feeds tokens one at a time; a blocked read never holds up ReadMove.
func (that *Reader) scan() {
	defer close(that.tokens)

	for that.scanner.Scan() {
		that.tokens <- token{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.tokens <- token{err: fmt.Errorf("failed to read input: %w", err)}
	}
}
