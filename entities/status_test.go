package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDomain(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid(), "%q should be in the domain", s)
	}
	assert.False(t, Status("Done").Valid())
	assert.False(t, Status("not started").Valid()) // case-sensitive
	assert.False(t, Status("").Valid())
}

func TestProgramStatusDomain(t *testing.T) {
	for _, s := range []ProgramStatus{ProgramActive, ProgramCompleted, ProgramOnHold} {
		assert.True(t, s.Valid())
	}
	assert.False(t, ProgramStatus("Inactive").Valid())
	assert.False(t, ProgramStatus("In Progress").Valid())
}
