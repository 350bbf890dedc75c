package models

import "strings"

type Run struct {
	Text string
	Bold bool
}

type Paragraph struct {
	Runs []Run
}

// Text joins the paragraph's runs the way a word processor displays them.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

type Row struct {
	Cells []string
}

type Table struct {
	Rows []Row
}

type Document struct {
	Path       string
	Paragraphs []Paragraph
	Tables     []Table
	Metadata   map[string]interface{}
}

// Field is one label and the text that follows it up to the next label.
type Field struct {
	Label string
	Key   string
	Raw   string
	Value string
	Found bool
}

type Record struct {
	Question map[string]string `json:"question"`
	Answer   map[string]string `json:"answer"`
}

func NewRecord() Record {
	return Record{
		Question: make(map[string]string),
		Answer:   make(map[string]string),
	}
}
