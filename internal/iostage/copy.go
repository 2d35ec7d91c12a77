package iostage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
)

// copyFile duplicates src into dst. Large files show a progress bar
// when withProgress is true.
func copyFile(src, dst string, withProgress bool) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	var r io.Reader = in
	if withProgress {
		bar := newProgressBar(info.Size(), filepath.Base(src))
		defer bar.Finish()
		r = bar.NewProxyReader(in)
	}

	if _, err = io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	slog.Debug("Copied file",
		"src", src,
		"dst", dst,
		"size", humanize.Bytes(uint64(info.Size())),
	)
	return nil
}

func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix+" ")
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
