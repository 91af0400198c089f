package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchType(t *testing.T) {
	s := Search{
		Location:     "London",
		SICCodes:     []string{"62012", "62020"},
		TotalResults: 50,
		Returned:     20,
		Written:      18,
		Skipped:      2,
		OutputFile:   "London_62012.txt",
	}

	assert.Equal(t, "London", s.Location)
	assert.Len(t, s.SICCodes, 2)
	assert.Equal(t, "London_62012.txt", s.OutputFile)
	assert.True(t, s.CreatedAt.IsZero())
}
