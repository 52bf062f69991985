package api

import (
	"errors"
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
)

const maxBatchTexts = 50

var notBlank = v.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("text cannot be empty")
	}
	return nil
})

// AnalyzeRequest is the body of POST /api/analyze. The text may also come
// from the ?text= query parameter.
type AnalyzeRequest struct {
	Text string `json:"text" form:"text"`
}

func (r AnalyzeRequest) Validate() error {
	return v.ValidateStruct(&r,
		v.Field(&r.Text, notBlank),
	)
}

// BatchAnalyzeRequest is the body of POST /api/analyze/batch.
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts"`
}

func (r BatchAnalyzeRequest) Validate() error {
	return v.ValidateStruct(&r,
		v.Field(&r.Texts, v.Required, v.Length(1, maxBatchTexts), v.Each(notBlank)),
	)
}
