package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDogTherapyInstruction(t *testing.T) {
	got := DogTherapyInstruction()

	assert.True(t, strings.HasPrefix(got, "You are a professional dog behavioral therapist"))
	assert.Contains(t, got, "Patient Profile, Behavioral Assessment, Diagnosis, Treatment")
	assert.Contains(t, got, "Body language (posture, tail position, ear position)")
	for _, d := range exampleDiagnoses {
		assert.Contains(t, got, `"`+d+`"`)
	}
	assert.True(t, strings.HasSuffix(got, "about their dog's personality."))
}

func TestDogTherapyInstructionStable(t *testing.T) {
	assert.Equal(t, DogTherapyInstruction(), DogTherapyInstruction())
}
