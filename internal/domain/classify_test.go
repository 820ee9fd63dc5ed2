package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySize(t *testing.T) {
	tests := []struct {
		diameterM float64
		expected  SizeClass
	}{
		{0.5, SizeUnder10m},
		{9.99, SizeUnder10m},
		{10, Size10to50m},
		{49.9, Size10to50m},
		{50, Size50to140m},
		{139, Size50to140m},
		{140, Size140to300m},
		{299, Size140to300m},
		{300, Size300mTo1km},
		{999, Size300mTo1km},
		{1000, SizeOver1km},
		{12000, SizeOver1km},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifySize(tt.diameterM), "diameter %g m", tt.diameterM)
	}
}

func TestClassifyEventType(t *testing.T) {
	tests := []struct {
		name      string
		diameterM float64
		angleDeg  float64
		expected  EventType
	}{
		{"small shallow", 20, 15, EventAirburst},
		{"small steep", 20, 70, EventAirburst},
		{"mid shallow", 55, 30, EventAirburst},
		{"mid steep", 55, 60, EventGround},
		{"large shallow", 200, 10, EventGround},
		{"large steep", 200, 85, EventGround},
		{"boundary 60m shallow", 60, 30, EventGround},
		{"boundary 30m steep", 30, 80, EventGround},
		{"just under 30m steep", 29.9, 80, EventAirburst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyEventType(tt.diameterM, tt.angleDeg))
		})
	}
}
