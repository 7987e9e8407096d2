package nlp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"faqbot/internal/nlp"
)

func TestClassifyGreeting(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("hello")
	assert.True(t, ok)
	assert.Equal(t, "Hello there! How can I assist you today?", answer)

	answer, ok = c.Classify("Hey, are you there?")
	assert.True(t, ok)
	assert.Equal(t, "Hello there! How can I assist you today?", answer)
}

func TestClassifyGratitude(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("ok thanks a lot")
	assert.True(t, ok)
	assert.Equal(t, "You're welcome!", answer)
}

// Saudação tem precedência sobre agradecimento quando os dois aparecem.
func TestClassifyGreetingBeforeGratitude(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("hi, thanks")
	assert.True(t, ok)
	assert.Equal(t, "Hello there! How can I assist you today?", answer)
}

func TestClassifyMission(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("what is your mission?")
	assert.True(t, ok)
	assert.Equal(t, "To propel Africa's prosperity by connecting its people, cultures and markets.", answer)
}

func TestClassifyVision(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("tell me the VISION")
	assert.True(t, ok)
	assert.Equal(t, "To be Africa's preferred and sustainable Aviation group.", answer)
}

// Missão tem precedência quando missão e visão aparecem juntas.
func TestClassifyMissionBeforeVision(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("what are the mission and vision?")
	assert.True(t, ok)
	assert.Equal(t, "To propel Africa's prosperity by connecting its people, cultures and markets.", answer)
}

func TestClassifyValuesEnumeration(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("what are scia values")
	assert.True(t, ok)
	assert.Equal(t, "Safety, Customer obsession, Integrity, Accountability", answer)
}

func TestClassifySingleValue(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("tell me about integrity")
	assert.True(t, ok)
	assert.Equal(t, "Integrity: We shall be ethical and trustworthy in all our engagements and we shall treat each person with respect.", answer)
}

func TestClassifyFirstValueWins(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("accountability and safety")
	assert.True(t, ok)
	assert.Equal(t, "Safety: Safety is the foundation of everything we do.", answer)
}

func TestClassifyNoMatch(t *testing.T) {
	c := nlp.NewClassifier()

	answer, ok := c.Classify("what time is the next flight")
	assert.False(t, ok)
	assert.Empty(t, answer)
}
