package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelForPercentage(t *testing.T) {
	tests := []struct {
		pct  int
		want MatchLabel
	}{
		{100, LabelPerfect},
		{90, LabelPerfect},
		{89, LabelExcellent},
		{85, LabelExcellent},
		{80, LabelExcellent},
		{79, LabelGood},
		{70, LabelGood},
		{69, LabelFair},
		{60, LabelFair},
		{59, LabelPoor},
		{20, LabelPoor},
		{0, LabelPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelForPercentage(tt.pct), "pct=%d", tt.pct)
	}
}
