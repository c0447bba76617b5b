package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/bastiangx/wordgrep/pkg/freq"
)

// Analyse scans the whole word source byte by byte into cf. Progress is
// reported on stderr; the bar is keyed to the file size.
func Analyse(path string, cf *freq.CharFreq) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word source: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat word source: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "analysing")
	reader := bufio.NewReader(io.TeeReader(f, bar))
	for {
		b, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read word source: %w", err)
		}
		cf.Add(b)
	}
	_ = bar.Finish()
	return nil
}
