package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailerWithoutCredentialsIsNoOp(t *testing.T) {
	m := NewSMTPMailer("", 587, "", "", "")

	assert.NoError(t, m.Send("subject", "<p>body</p>", "someone@example.com"))
}
