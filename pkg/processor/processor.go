package processor

import (
	"errors"
	"unicode/utf8"

	"github.com/xhad/medqa/internal/models"
)

// NotFoundText is stored as a field's value when its interval could not be located.
const NotFoundText = "未找到这两个关键词之间的内容"

// IsAnswerField reports whether a cleaned label belongs in the answer map.
// Every other label is part of the question.
func IsAnswerField(key string) bool {
	switch key {
	case "诊断", "用药情况", "是否根据病原学结果调整", "出院后是否继续治疗",
		"治疗结局", "住院天数", "出院带药情况":
		return true
	}
	return false
}

type ProcessorConfig struct {
	OnProgress func(label string) // called once per label pair
}

type Processor struct {
	config ProcessorConfig
}

func NewWithConfig(config ProcessorConfig) Processor {
	return Processor{
		config: config,
	}
}

func New() Processor {
	return NewWithConfig(ProcessorConfig{})
}

func (p *Processor) Process(doc *models.Document) (models.Record, error) {
	if doc == nil {
		return models.Record{}, errors.New("nil document")
	}

	record := models.NewRecord()
	for _, field := range p.Fields(doc) {
		if IsAnswerField(field.Key) {
			record.Answer[field.Key] = field.Value
		} else {
			record.Question[field.Key] = field.Value
		}
	}

	return record, nil
}

// Fields pairs each bold label with the next one and extracts the text
// between them. Fields with at most one character of content are left out.
func (p *Processor) Fields(doc *models.Document) []models.Field {
	var fields []models.Field

	labels := ExtractBoldLabels(doc.Paragraphs)
	for i := 0; i < len(labels)-1; i++ {
		label, next := labels[i], labels[i+1]
		if p.config.OnProgress != nil {
			p.config.OnProgress(label)
		}

		raw, found := ExtractBetween(doc.Paragraphs, label, next)
		if !found {
			raw = NotFoundText
		}

		key := CleanString(NormalizePunctuation(label))
		value := CleanString(NormalizePunctuation(raw))
		if key == CultureLabel {
			value = MergeTableRows(value, doc.Tables)
		}

		if utf8.RuneCountInString(raw) <= 1 {
			continue
		}

		fields = append(fields, models.Field{
			Label: label,
			Key:   key,
			Raw:   raw,
			Value: value,
			Found: found,
		})
	}

	return fields
}
