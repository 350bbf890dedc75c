package types

import (
	"github.com/xhad/medqa/internal/models"
)

// Core interfaces
type DocumentReader interface {
	Read(path string) (*models.Document, error)
}

type Processor interface {
	Process(doc *models.Document) (models.Record, error)
}

type RecordStore interface {
	Store(record models.Record) error
	Len() (int, error)
}
