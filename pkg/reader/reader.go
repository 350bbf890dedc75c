package reader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"
	"github.com/xhad/medqa/internal/models"
	"golang.org/x/text/unicode/norm"
)

type ReaderConfig struct {
	// Skip NFC normalization of run text.
	RawText    bool
	OnProgress func(paragraph int) // called after each body paragraph
}

type Reader struct {
	config ReaderConfig
}

func NewWithConfig(config ReaderConfig) *Reader {
	return &Reader{
		config: config,
	}
}

func New() *Reader {
	return NewWithConfig(ReaderConfig{})
}

// Read opens a .docx file and returns its body paragraphs and tables.
func (r *Reader) Read(path string) (*models.Document, error) {
	file, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer file.Close()

	doc, err := r.parse(file.Editable().GetContent())
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	doc.Path = path

	if len(doc.Paragraphs) == 0 {
		log.Printf("document %s has no body paragraphs", path)
	}

	return doc, nil
}

// ReadBytes is Read for a document already held in memory.
func (r *Reader) ReadBytes(data []byte) (*models.Document, error) {
	file, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	return r.parse(file.Editable().GetContent())
}

func (r *Reader) parse(content string) (*models.Document, error) {
	doc, err := r.ParseDocumentXML(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	doc.Metadata = map[string]interface{}{
		"paragraphs": len(doc.Paragraphs),
		"tables":     len(doc.Tables),
		"time":       time.Now(),
	}
	return doc, nil
}

// ParseDocumentXML walks the contents of word/document.xml.
func (r *Reader) ParseDocumentXML(rd io.Reader) (*models.Document, error) {
	w := &walker{
		doc:        &models.Document{},
		normalize:  !r.config.RawText,
		onProgress: r.config.OnProgress,
	}

	decoder := xml.NewDecoder(rd)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			w.start(t)
		case xml.CharData:
			if w.inText {
				w.run.Text += string(t)
			}
		case xml.EndElement:
			w.end(t)
		}
	}

	return w.doc, nil
}

// walker tracks where the decoder is in the body. Only body-level
// paragraphs and the cells of body-level tables are collected; paragraphs
// nested in text boxes or inner tables are skipped.
type walker struct {
	doc        *models.Document
	normalize  bool
	onProgress func(int)

	stack []string

	para       *models.Paragraph
	paraInCell bool
	nested     int
	run        *models.Run
	inText     bool

	tableDepth int
	table      *models.Table
	row        *models.Row
	inCell     bool
	cell       []string
	span       int
}

func (w *walker) parent() string {
	if len(w.stack) == 0 {
		return ""
	}
	return w.stack[len(w.stack)-1]
}

func (w *walker) grandparent() string {
	if len(w.stack) < 2 {
		return ""
	}
	return w.stack[len(w.stack)-2]
}

func (w *walker) start(t xml.StartElement) {
	parent := w.parent()
	inRun := w.run != nil && w.nested == 0 && parent == "r"

	switch t.Name.Local {
	case "tbl":
		w.tableDepth++
		if w.tableDepth == 1 && parent == "body" {
			w.table = &models.Table{}
		}
	case "tr":
		if w.tableDepth == 1 && w.table != nil {
			w.row = &models.Row{}
		}
	case "tc":
		if w.tableDepth == 1 && w.row != nil {
			w.inCell = true
			w.cell = nil
			w.span = 1
		}
	case "gridSpan":
		if w.tableDepth == 1 && w.inCell && parent == "tcPr" {
			if n, err := strconv.Atoi(attr(t, "val")); err == nil && n > 1 {
				w.span = n
			}
		}
	case "p":
		switch {
		case w.para != nil:
			w.nested++
		case parent == "body":
			w.para = &models.Paragraph{}
			w.paraInCell = false
		case parent == "tc" && w.tableDepth == 1 && w.inCell:
			w.para = &models.Paragraph{}
			w.paraInCell = true
		}
	case "r":
		if w.para != nil && w.run == nil && w.nested == 0 {
			w.run = &models.Run{}
		}
	case "b":
		if w.run != nil && w.nested == 0 && parent == "rPr" && w.grandparent() == "r" {
			w.run.Bold = onOff(t)
		}
	case "t":
		w.inText = inRun
	case "tab":
		if inRun {
			w.run.Text += "\t"
		}
	case "br":
		// page and column breaks carry no text
		if inRun {
			if typ := attr(t, "type"); typ == "" || typ == "textWrapping" {
				w.run.Text += "\n"
			}
		}
	case "cr":
		if inRun {
			w.run.Text += "\n"
		}
	}

	w.stack = append(w.stack, t.Name.Local)
}

func (w *walker) end(t xml.EndElement) {
	if len(w.stack) > 0 {
		w.stack = w.stack[:len(w.stack)-1]
	}

	switch t.Name.Local {
	case "t":
		w.inText = false
	case "r":
		if w.run != nil && w.nested == 0 {
			if w.normalize {
				w.run.Text = norm.NFC.String(w.run.Text)
			}
			w.para.Runs = append(w.para.Runs, *w.run)
			w.run = nil
		}
	case "p":
		switch {
		case w.nested > 0:
			w.nested--
		case w.para != nil:
			if w.paraInCell {
				w.cell = append(w.cell, w.para.Text())
			} else {
				w.doc.Paragraphs = append(w.doc.Paragraphs, *w.para)
				if w.onProgress != nil {
					w.onProgress(len(w.doc.Paragraphs))
				}
			}
			w.para = nil
		}
	case "tc":
		if w.tableDepth == 1 && w.inCell {
			text := strings.Join(w.cell, "\n")
			for i := 0; i < w.span; i++ {
				w.row.Cells = append(w.row.Cells, text)
			}
			w.inCell = false
		}
	case "tr":
		if w.tableDepth == 1 && w.row != nil {
			w.table.Rows = append(w.table.Rows, *w.row)
			w.row = nil
		}
	case "tbl":
		if w.tableDepth == 1 && w.table != nil {
			w.doc.Tables = append(w.doc.Tables, *w.table)
			w.table = nil
		}
		if w.tableDepth > 0 {
			w.tableDepth--
		}
	}
}

func attr(t xml.StartElement, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// onOff reads an OOXML toggle property; a bare element means on.
func onOff(t xml.StartElement) bool {
	switch strings.ToLower(attr(t, "val")) {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}
