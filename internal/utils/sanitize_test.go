package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

func TestPlainText(t *testing.T) {
	tests := map[string]string{
		`Eu & minha irmã, "juntas", D'Ávila 5 < 6`: `Eu & minha irmã, "juntas", D'Ávila 5 < 6`,
		"  <b>Acordei</b> cedo  ":                  "Acordei cedo",
		`<a href="x">link</a> & <i>mais</i>`:       "link & mais",
		"<script>alert(1)</script>ok":              "ok",
		"":                                         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, util.PlainText(in), in)
	}
}
