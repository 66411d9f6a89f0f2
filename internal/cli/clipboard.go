package cli

import (
	"bytes"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// systemClipboard implements Copier using github.com/atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// clipboardTee mirrors everything written to the listing output so it can be
// copied once the listing is complete.
type clipboardTee struct {
	buffer bytes.Buffer
}

func (tee *clipboardTee) wrap(output io.Writer) io.Writer {
	return io.MultiWriter(output, &tee.buffer)
}

// text returns the captured listing without terminal escape sequences.
func (tee *clipboardTee) text() string {
	return ansi.Strip(tee.buffer.String())
}
