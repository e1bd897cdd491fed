package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]Status{
		"A Fazer":    StatusToDo,
		"a fazer":    StatusToDo,
		"A_FAZER":    "A_FAZER",
		"  Fazendo ": StatusDoing,
		"Pronto":     StatusReady,
		"ENTREGUE":   StatusDelivered,
		"Em  Espera": "EM_ESPERA",
		"":           "",
	}
	for label, want := range cases {
		assert.Equal(t, want, Normalize(label), "label %q", label)
	}
}

func TestStatusMatches(t *testing.T) {
	assert.True(t, StatusToDo.Matches("A Fazer"))
	assert.True(t, StatusReady.Matches(" pronto "))
	assert.False(t, StatusToDo.Matches("Fazendo"))
}

func TestOrderItemCurrentStatus(t *testing.T) {
	item := OrderItem{StatusControl: StatusControl{Status: StatusRecord{Description: "A Fazer"}}}
	assert.Equal(t, StatusToDo, item.CurrentStatus())
}
