package ligolw

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ligolw")

// Load reads a document from path. Files ending in .gz are decompressed
// transparently, matching the convention used for archived documents.
func Load(path string, factory ElementFactory) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream in %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	log.Infof("loading %s", path)
	doc, err := Parse(r, factory)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path, gzip-compressing when the path ends in .gz.
func Save(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	log.Infof("writing %s", path)
	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := doc.Write(w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return fmt.Errorf("close gzip stream in %s: %w", path, err)
		}
	}
	return f.Close()
}
