package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if FieldFile == "" {
		t.Error("FieldFile constant should not be empty")
	}
	if FieldCount == "" {
		t.Error("FieldCount constant should not be empty")
	}
	if FieldDelimiter == "" {
		t.Error("FieldDelimiter constant should not be empty")
	}
	if FieldEncoding == "" {
		t.Error("FieldEncoding constant should not be empty")
	}
	if FieldRows == "" {
		t.Error("FieldRows constant should not be empty")
	}
	if FieldColumns == "" {
		t.Error("FieldColumns constant should not be empty")
	}
}
